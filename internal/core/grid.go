package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns a copy of the current cell values.
func (g *ByteGrid) Clone() []uint8 {
	return append([]uint8(nil), g.data...)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CountGrid stores a 2D grid of event counters in row-major order.
type CountGrid struct {
	W, H int
	data []uint32
}

// NewCountGrid allocates a zeroed counter grid with the given dimensions.
func NewCountGrid(w, h int) *CountGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CountGrid{W: w, H: h, data: make([]uint32, w*h)}
}

// Counts exposes the backing slice of counters.
func (g *CountGrid) Counts() []uint32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *CountGrid) Index(x, y int) int { return y*g.W + x }

// Inc increments the counter at the given linear index.
func (g *CountGrid) Inc(idx int) { g.data[idx]++ }

// Clear resets every counter to zero.
func (g *CountGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
