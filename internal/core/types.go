package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead cells do not count towards neighbor totals.
	Dead Cell = 0
	// Live cells count towards neighbor totals.
	Live Cell = 1
)

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Live {
		return Dead
	}
	return Live
}

func (c Cell) String() string {
	if c == Live {
		return "live"
	}
	return "dead"
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of positions covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Wrap applies toroidal wrapping to (row, col).
func (s Size) Wrap(row, col int) (int, int) {
	row = (row%s.H + s.H) % s.H
	col = (col%s.W + s.W) % s.W
	return row, col
}
