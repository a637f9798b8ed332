package export

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"lipidmc/internal/sims/membrane"
)

// AcceptanceChart plots the per-round acceptance rate as a PNG line chart.
func AcceptanceChart(path string, stats []membrane.RoundStat) error {
	if len(stats) < 2 {
		return fmt.Errorf("export: need at least two rounds to chart, got %d", len(stats))
	}
	xs := make([]float64, len(stats))
	ys := make([]float64, len(stats))
	for i, s := range stats {
		xs[i] = float64(s.Round)
		if s.Attempts > 0 {
			ys[i] = float64(s.Accepted) / float64(s.Attempts)
		}
	}

	graph := chart.Chart{
		Title: "Accepted exchanges per round",
		XAxis: chart.XAxis{Name: "Round"},
		YAxis: chart.YAxis{Name: "Acceptance rate"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "acceptance", XValues: xs, YValues: ys},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}
