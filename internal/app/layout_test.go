package app

import (
	"testing"

	"torus-life/internal/core"
)

func TestCellAt(t *testing.T) {
	size := core.Size{W: 20, H: 10}
	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"inside first cell", 15, 15, 0, 0, true},
		{"second row third col", 32, 16, 1, 2, true},
		{"last cell", 319, 159, 9, 19, true},
		{"right of grid", 320, 0, 0, 0, false},
		{"below grid in hud", 0, 160, 0, 0, false},
		{"negative", -1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := cellAt(tt.x, tt.y, 16, size)
			if ok != tt.ok || (ok && (row != tt.row || col != tt.col)) {
				t.Errorf("cellAt(%d,%d) = (%d,%d,%v), want (%d,%d,%v)", tt.x, tt.y, row, col, ok, tt.row, tt.col, tt.ok)
			}
		})
	}
	if _, _, ok := cellAt(1, 1, 0, size); ok {
		t.Error("zero scale must not map to a cell")
	}
}
