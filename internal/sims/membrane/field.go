package membrane

// Direction identifies one of the four cardinal exchange directions.
type Direction int

const (
	DirUp    Direction = iota // toward decreasing y
	DirDown                   // toward increasing y
	DirLeft                   // toward decreasing x
	DirRight                  // toward increasing x
)

// NumDirections is the number of cardinal exchange directions.
const NumDirections = 4

var dirOffsets = [NumDirections][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// Offset returns the (dx, dy) lattice step for the direction.
func (d Direction) Offset() (int, int) {
	o := dirOffsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Field holds the four directional switch-probability grids derived from a
// lattice snapshot. A field has no persistent identity: the engine derives a
// fresh one before every move decision and discards it afterwards.
type Field struct {
	W, H  int
	probs [NumDirections][]float64
}

// DeriveField computes the switch probability for every cell and direction:
// the symmetrized affinity between the cell's type and its neighbor's type,
// normalized by three times the global affinity maximum. That normalization
// caps every entry at 1/3. Directions pointing outside the lattice get
// probability zero, as do all entries of an all-zero affinity matrix.
func DeriveField(lattice []uint8, w, h int, aff *Affinity) *Field {
	f := &Field{W: w, H: h}
	total := w * h
	for d := range f.probs {
		f.probs[d] = make([]float64, total)
	}
	norm := 3 * aff.Max()
	if norm <= 0 {
		return f
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			ti := int(lattice[idx]) - 1
			for d := 0; d < NumDirections; d++ {
				nx := x + dirOffsets[d][0]
				ny := y + dirOffsets[d][1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				tj := int(lattice[ny*w+nx]) - 1
				f.probs[d][idx] = aff.At(ti, tj) / norm
			}
		}
	}
	return f
}

// At returns the probability for the given direction at (x, y).
func (f *Field) At(d Direction, x, y int) float64 {
	return f.probs[d][y*f.W+x]
}

// Grid exposes the probability grid for one direction.
func (f *Field) Grid(d Direction) []float64 { return f.probs[d] }
