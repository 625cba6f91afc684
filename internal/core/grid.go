package core

import "fmt"

// Grid stores a 2D grid of cells in row-major order. Coordinates are given as
// (row, col) with row in [0,H) and col in [0,W).
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	return g.Size().Wrap(row, col)
}

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get returns the state at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, g.boundsErr(row, col)
	}
	return g.data[g.Index(row, col)], nil
}

// Set overwrites the state at (row, col).
func (g *Grid) Set(row, col int, c Cell) error {
	if !g.InBounds(row, col) {
		return g.boundsErr(row, col)
	}
	g.data[g.Index(row, col)] = c
	return nil
}

// CountLiveNeighbors returns how many of the eight cells surrounding
// (row, col) are live, wrapping across every edge.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			if g.data[g.Index(r, c)] == Live {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Live {
			n++
		}
	}
	return n
}

// Snapshot copies the cells into dst, growing it when needed, and returns it.
func (g *Grid) Snapshot(dst []Cell) []Cell {
	if cap(dst) < len(g.data) {
		dst = make([]Cell, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}

// Swap installs buf as the grid contents and returns the previous backing
// slice for reuse. buf must hold exactly W*H cells.
func (g *Grid) Swap(buf []Cell) []Cell {
	if len(buf) != len(g.data) {
		panic(fmt.Sprintf("core: swap buffer has %d cells, grid needs %d", len(buf), len(g.data)))
	}
	prev := g.data
	g.data = buf
	return prev
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

func (g *Grid) boundsErr(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, g.W, g.H)
}

// NeighborCounts fills dst with the live-neighbor count of every cell in a
// row-major snapshot of the given size and returns it.
func NeighborCounts(cells []Cell, size Size, dst []uint8) []uint8 {
	n := size.Cells()
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = 0
	}
	if len(cells) != n {
		return dst
	}
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if cells[row*size.W+col] != Live {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					r, c := size.Wrap(row+dr, col+dc)
					dst[r*size.W+c]++
				}
			}
		}
	}
	return dst
}
