package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"lipidmc/internal/sims/membrane"
)

// WriteRoundStats writes one CSV record per completed round.
func WriteRoundStats(path string, stats []membrane.RoundStat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"round", "attempts", "accepted", "acceptance_rate"}); err != nil {
		return err
	}
	for _, s := range stats {
		rate := 0.0
		if s.Attempts > 0 {
			rate = float64(s.Accepted) / float64(s.Attempts)
		}
		row := []string{
			strconv.Itoa(s.Round),
			strconv.Itoa(s.Attempts),
			strconv.Itoa(s.Accepted),
			strconv.FormatFloat(rate, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteGrid writes a row-major w×h grid as CSV, one lattice row per record.
func WriteGrid(path string, values []float64, w, h int) error {
	if len(values) != w*h {
		return fmt.Errorf("export: grid has %d values, want %d", len(values), w*h)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	row := make([]string, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			row[x] = strconv.FormatFloat(values[y*w+x], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
