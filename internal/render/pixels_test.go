package render

import (
	"image/color"
	"slices"
	"testing"

	"torus-life/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []core.Cell{core.Live, core.Dead}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.Black, color.RGBA{R: 250, G: 240, B: 230, A: 255})

	want := []byte{0, 0, 0, 255, 250, 240, 230, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}
