package membrane

import "testing"

func TestDeriveFieldProbabilityBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	cfg.Params.Types = 4
	cfg.Seed = 7

	world, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	field := DeriveField(world.Lattice(), cfg.Width, cfg.Height, world.Affinity())
	for d := DirUp; d <= DirRight; d++ {
		for i, p := range field.Grid(d) {
			if p < 0 || p > 1.0/3.0 {
				t.Fatalf("direction %s cell %d: probability %v outside [0, 1/3]", d, i, p)
			}
		}
	}
}

func TestDeriveFieldBoundaryZeroing(t *testing.T) {
	for _, seed := range []int64{1, 99, 12345} {
		cfg := DefaultConfig()
		cfg.Width = 5
		cfg.Height = 4
		cfg.Params.Types = 3
		cfg.Seed = seed

		world, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		field := DeriveField(world.Lattice(), cfg.Width, cfg.Height, world.Affinity())

		for y := 0; y < cfg.Height; y++ {
			if got := field.At(DirLeft, 0, y); got != 0 {
				t.Fatalf("seed %d: left edge cell (0,%d) has left probability %v, want 0", seed, y, got)
			}
			if got := field.At(DirRight, cfg.Width-1, y); got != 0 {
				t.Fatalf("seed %d: right edge cell (%d,%d) has right probability %v, want 0", seed, cfg.Width-1, y, got)
			}
		}
		for x := 0; x < cfg.Width; x++ {
			if got := field.At(DirUp, x, 0); got != 0 {
				t.Fatalf("seed %d: top edge cell (%d,0) has up probability %v, want 0", seed, x, got)
			}
			if got := field.At(DirDown, x, cfg.Height-1); got != 0 {
				t.Fatalf("seed %d: bottom edge cell (%d,%d) has down probability %v, want 0", seed, x, cfg.Height-1, got)
			}
		}
	}
}

func TestDeriveFieldUniformAffinityIsExactlyOneThird(t *testing.T) {
	raw := [][]float64{
		{1, 1},
		{1, 1},
	}
	aff, err := NewAffinity(raw, 2)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	w, h := 6, 5
	lattice := make([]uint8, w*h)
	for i := range lattice {
		lattice[i] = uint8(i%2) + 1
	}

	field := DeriveField(lattice, w, h, aff)
	want := 1.0 / 3.0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for d := DirUp; d <= DirRight; d++ {
				if got := field.At(d, x, y); got != want {
					t.Fatalf("interior cell (%d,%d) direction %s: %v, want exactly 1/3", x, y, d, got)
				}
			}
		}
	}
}

func TestDeriveFieldUsesNeighborPairAffinity(t *testing.T) {
	raw := [][]float64{
		{4, 1},
		{1, 2},
	}
	aff, err := NewAffinity(raw, 2)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	// Single row: type 1 next to type 2.
	lattice := []uint8{1, 2}
	field := DeriveField(lattice, 2, 1, aff)

	norm := 3 * aff.Max()
	if want := aff.At(0, 1) / norm; field.At(DirRight, 0, 0) != want {
		t.Fatalf("right probability at (0,0) = %v, want %v", field.At(DirRight, 0, 0), want)
	}
	if want := aff.At(1, 0) / norm; field.At(DirLeft, 1, 0) != want {
		t.Fatalf("left probability at (1,0) = %v, want %v", field.At(DirLeft, 1, 0), want)
	}
	if got := field.At(DirUp, 0, 0); got != 0 {
		t.Fatalf("up probability in a single-row lattice = %v, want 0", got)
	}
	if got := field.At(DirDown, 1, 0); got != 0 {
		t.Fatalf("down probability in a single-row lattice = %v, want 0", got)
	}
}

func TestDeriveFieldAllZeroAffinity(t *testing.T) {
	raw := [][]float64{
		{0, 0},
		{0, 0},
	}
	aff, err := NewAffinity(raw, 2)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	lattice := []uint8{1, 2, 2, 1}
	field := DeriveField(lattice, 2, 2, aff)
	for d := DirUp; d <= DirRight; d++ {
		for i, p := range field.Grid(d) {
			if p != 0 {
				t.Fatalf("direction %s cell %d: probability %v, want 0 for all-zero affinity", d, i, p)
			}
		}
	}
}

func TestDirectionOffsets(t *testing.T) {
	checks := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}
	for _, c := range checks {
		dx, dy := c.dir.Offset()
		if dx != c.dx || dy != c.dy {
			t.Fatalf("%s offset = (%d,%d), want (%d,%d)", c.dir, dx, dy, c.dx, c.dy)
		}
	}
}
