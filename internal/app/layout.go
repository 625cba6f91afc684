package app

import "torus-life/internal/core"

// cellAt maps a window position to grid coordinates for a grid drawn at the
// origin with the given pixel scale.
func cellAt(x, y, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col := y/scale, x/scale
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}
