package membrane

import "fmt"

// Affinity is a symmetric matrix of pairwise lipid-type interaction scores.
// Entries are indexed by zero-based type indices, so lipid types a and b map
// to (a-1, b-1). The matrix is immutable after construction.
type Affinity struct {
	k      int
	scores []float64
	max    float64
}

// NewAffinity symmetrizes the leading k×k block of the raw score matrix as
// (M + Mᵗ)/2 and caches the global maximum entry. The raw matrix must cover
// at least k rows and k columns: a smaller matrix would make probability
// derivation index out of range, so the mismatch is rejected here instead.
func NewAffinity(raw [][]float64, k int) (*Affinity, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTypeCount, k)
	}
	if len(raw) < k {
		return nil, fmt.Errorf("%w: %d rows for %d types", ErrAffinityTooSmall, len(raw), k)
	}
	for i := 0; i < k; i++ {
		if len(raw[i]) < k {
			return nil, fmt.Errorf("%w: row %d has %d columns for %d types", ErrAffinityTooSmall, i, len(raw[i]), k)
		}
	}
	a := &Affinity{k: k, scores: make([]float64, k*k)}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			s := (raw[i][j] + raw[j][i]) / 2
			a.scores[i*k+j] = s
			if s > a.max {
				a.max = s
			}
		}
	}
	return a, nil
}

// K returns the number of lipid types the matrix covers.
func (a *Affinity) K() int { return a.k }

// At returns the symmetrized score for zero-based type indices (i, j).
func (a *Affinity) At(i, j int) float64 { return a.scores[i*a.k+j] }

// Max returns the global maximum entry.
func (a *Affinity) Max() float64 { return a.max }

// Matrix returns the symmetrized scores as a k×k slice copy.
func (a *Affinity) Matrix() [][]float64 {
	m := make([][]float64, a.k)
	for i := range m {
		m[i] = append([]float64(nil), a.scores[i*a.k:(i+1)*a.k]...)
	}
	return m
}

// DefaultRaw returns a deterministic interaction fixture where like types
// attract most strongly and the score falls off with type distance.
func DefaultRaw(k int) [][]float64 {
	raw := make([][]float64, k)
	for i := range raw {
		raw[i] = make([]float64, k)
		for j := range raw[i] {
			d := i - j
			if d < 0 {
				d = -d
			}
			raw[i][j] = 1 / float64(1+d)
		}
	}
	return raw
}
