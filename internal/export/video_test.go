package export

import (
	"os"
	"path/filepath"
	"testing"

	"lipidmc/internal/sims/membrane"
)

func TestVideoRecorderWritesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.avi")
	palette := membrane.TypePalette(3)

	rec, err := NewVideoRecorder(path, 4, 4, 2, 5, palette)
	if err != nil {
		t.Fatalf("NewVideoRecorder: %v", err)
	}

	cells := []uint8{
		1, 2, 3, 1,
		2, 3, 1, 2,
		3, 1, 2, 3,
		1, 2, 3, 1,
	}
	for i := 0; i < 3; i++ {
		if err := rec.AddFrame(cells); err != nil {
			t.Fatalf("AddFrame %d: %v", i, err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("video file is empty")
	}
}
