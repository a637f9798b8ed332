package membrane

// coordSet is an ordered index of occupied lattice cells. With the lattice
// fully packed it always contains every cell, but the exchange path keeps it
// current so partial occupancy can be introduced later without reshaping the
// round loop. The ordering is fixed at construction and permuted only by
// swaps, which keeps the per-round visit order, and therefore the RNG draw
// sequence, reproducible under a fixed seed.
type coordSet struct {
	cells []int // linear cell indices in visit order
	pos   []int // pos[cell] = position of cell within cells, -1 if absent
}

func newCoordSet(total int) *coordSet {
	s := &coordSet{cells: make([]int, total), pos: make([]int, total)}
	for i := 0; i < total; i++ {
		s.cells[i] = i
		s.pos[i] = i
	}
	return s
}

// snapshot copies the current visit order into dst so that in-round
// mutation of the set cannot affect iteration.
func (s *coordSet) snapshot(dst []int) []int {
	dst = dst[:0]
	return append(dst, s.cells...)
}

// swap records an exchange between two occupied cells. Membership does not
// change, the remove/add pair of a full swap cancels, but the two entries
// trade places in the visit order, mirroring the lipids that moved.
func (s *coordSet) swap(a, b int) {
	pa, pb := s.pos[a], s.pos[b]
	if pa < 0 || pb < 0 {
		return
	}
	s.cells[pa], s.cells[pb] = s.cells[pb], s.cells[pa]
	s.pos[a], s.pos[b] = pb, pa
}

func (s *coordSet) size() int { return len(s.cells) }

func (s *coordSet) contains(cell int) bool {
	return cell >= 0 && cell < len(s.pos) && s.pos[cell] >= 0
}
