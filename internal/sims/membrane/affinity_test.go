package membrane

import (
	"errors"
	"math"
	"testing"
)

func TestNewAffinitySymmetrizes(t *testing.T) {
	raw := [][]float64{
		{1, 4, 0},
		{2, 5, 8},
		{6, 0, 3},
	}
	aff, err := NewAffinity(raw, 3)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := (raw[i][j] + raw[j][i]) / 2
			if got := aff.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Fatalf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
			if aff.At(i, j) != aff.At(j, i) {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}

	// Off-diagonal entries symmetrize to at most (8+0)/2 = 4, so the
	// untouched diagonal 5 is the global maximum.
	if got := aff.Max(); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Max() = %v, want 5", got)
	}
}

func TestNewAffinityRejectsSmallMatrix(t *testing.T) {
	if _, err := NewAffinity([][]float64{{1, 2}, {3, 4}}, 3); !errors.Is(err, ErrAffinityTooSmall) {
		t.Fatalf("expected ErrAffinityTooSmall for 2x2 raw with 3 types, got %v", err)
	}

	ragged := [][]float64{
		{1, 2, 3},
		{4, 5},
		{6, 7, 8},
	}
	if _, err := NewAffinity(ragged, 3); !errors.Is(err, ErrAffinityTooSmall) {
		t.Fatalf("expected ErrAffinityTooSmall for ragged raw, got %v", err)
	}
}

func TestNewAffinityRejectsBadTypeCount(t *testing.T) {
	if _, err := NewAffinity([][]float64{{1}}, 0); !errors.Is(err, ErrInvalidTypeCount) {
		t.Fatalf("expected ErrInvalidTypeCount, got %v", err)
	}
}

func TestNewAffinityUsesLeadingBlock(t *testing.T) {
	raw := [][]float64{
		{1, 2, 99},
		{2, 1, 99},
		{99, 99, 99},
	}
	aff, err := NewAffinity(raw, 2)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}
	if aff.K() != 2 {
		t.Fatalf("K() = %d, want 2", aff.K())
	}
	if got := aff.Max(); got != 2 {
		t.Fatalf("Max() = %v, want 2 (entries outside the leading block must be ignored)", got)
	}
}

func TestDefaultRawFallsOffWithDistance(t *testing.T) {
	raw := DefaultRaw(4)
	for i := 0; i < 4; i++ {
		if raw[i][i] != 1 {
			t.Fatalf("diagonal entry (%d,%d) = %v, want 1", i, i, raw[i][i])
		}
	}
	if !(raw[0][1] > raw[0][2] && raw[0][2] > raw[0][3]) {
		t.Fatalf("scores should fall off with type distance: %v", raw[0])
	}
}

func TestMatrixReturnsCopy(t *testing.T) {
	aff, err := NewAffinity(DefaultRaw(2), 2)
	if err != nil {
		t.Fatalf("NewAffinity: %v", err)
	}
	m := aff.Matrix()
	m[0][0] = 42
	if aff.At(0, 0) == 42 {
		t.Fatal("Matrix must return a copy, not the backing storage")
	}
}
