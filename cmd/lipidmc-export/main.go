package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"lipidmc/internal/export"
	"lipidmc/internal/sims/membrane"
)

func main() {
	width := flag.Int("w", 64, "lattice columns")
	height := flag.Int("h", 64, "lattice rows")
	types := flag.Int("types", 3, "number of lipid types")
	rounds := flag.Int("rounds", 200, "diffusion rounds to run")
	seed := flag.Int64("seed", 1337, "seed for lattice population and move decisions")
	outDir := flag.String("out", "out", "output directory")
	cellSize := flag.Int("cell", 6, "pixels per lattice cell in rendered output")
	video := flag.Bool("video", false, "record one video frame per round")
	fps := flag.Int("fps", 10, "video frame rate")
	flag.Parse()

	cfg := membrane.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Params.Types = *types
	cfg.Params.Rounds = *rounds

	world, err := membrane.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	var rec *export.VideoRecorder
	if *video {
		rec, err = export.NewVideoRecorder(filepath.Join(*outDir, "lattice.avi"), *width, *height, *cellSize, *fps, world.Palette())
		if err != nil {
			log.Fatal(err)
		}
	}

	for r := 0; r < *rounds; r++ {
		world.Step()
		if rec != nil {
			if err := rec.AddFrame(world.Lattice()); err != nil {
				log.Fatalf("video frame %d: %v", r+1, err)
			}
		}
	}
	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Fatal(err)
		}
	}

	writeArtifacts(world, *outDir, *cellSize)

	total := 0
	for _, s := range world.RoundStats() {
		total += s.Accepted
	}
	fmt.Printf("ran %d rounds on %dx%d lattice (%d types): %d accepted exchanges\n",
		*rounds, *width, *height, *types, total)
}

func writeArtifacts(world *membrane.World, outDir string, cellSize int) {
	size := world.Size()
	w, h := size.W, size.H

	check := func(name string, err error) {
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}

	check("lattice heatmap", export.Heatmap{CellSize: cellSize, Title: "Final lattice"}.
		WritePNG(filepath.Join(outDir, "lattice.png"), export.TypesToFloats(world.Lattice()), w, h))
	check("move-count heatmap", export.Heatmap{CellSize: cellSize, Title: "Accepted moves per cell"}.
		WritePNG(filepath.Join(outDir, "move_counts.png"), export.CountsToFloats(world.MoveCounts()), w, h))

	field := world.Field()
	for d := membrane.DirUp; d <= membrane.DirRight; d++ {
		name := fmt.Sprintf("field_%s.png", d)
		check(name, export.Heatmap{CellSize: cellSize, Title: "Switch probability " + d.String()}.
			WritePNG(filepath.Join(outDir, name), field.Grid(d), w, h))
	}

	aff, k := export.FlattenMatrix(world.Affinity().Matrix())
	check("affinity heatmap", export.Heatmap{CellSize: 32, Title: "Affinity matrix"}.
		WritePNG(filepath.Join(outDir, "affinity.png"), aff, k, k))

	check("round stats", export.WriteRoundStats(filepath.Join(outDir, "rounds.csv"), world.RoundStats()))
	check("move-count grid", export.WriteGrid(filepath.Join(outDir, "move_counts.csv"), export.CountsToFloats(world.MoveCounts()), w, h))

	if len(world.RoundStats()) >= 2 {
		check("acceptance chart", export.AcceptanceChart(filepath.Join(outDir, "acceptance.png"), world.RoundStats()))
	}
}
