package core

import "fmt"

// Grid stores a 2D grid of int cell values in row-major order. Dimensions
// are fixed at construction and never change for the life of the grid.
type Grid struct {
	W, H int
	data []int
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]int, w*h)}
}

// FromRows builds a grid from row slices. Every row must have the same
// non-zero length; jagged or empty input is rejected before any cell is
// copied.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid needs at least one row")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("grid needs at least one column")
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d", y, len(row), w)
		}
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		copy(g.data[y*w:(y+1)*w], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid. Out-of-bounds
// neighbors are dropped by the simulation, never wrapped.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y).
func (g *Grid) At(x, y int) int { return g.data[y*g.W+x] }

// Set writes the value at (x, y).
func (g *Grid) Set(x, y, v int) { g.data[y*g.W+x] = v }

// Rows copies the grid out as one slice per row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := 0; y < g.H; y++ {
		rows[y] = append([]int(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	copy(c.data, g.data)
	return c
}

// Total sums every cell. The overflow rule pairs each transfer with a
// decrement, so Total is invariant across rounds.
func (g *Grid) Total() int {
	total := 0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
