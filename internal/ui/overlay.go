//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/core"
)

// Overlay tints each cell by its live-neighbor count. N toggles it.
type Overlay struct {
	size   core.Size
	scale  int
	show   bool
	tint   color.RGBA
	counts []uint8
	img    *ebiten.Image
	buf    []byte
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{size: size, scale: scale, tint: color.RGBA{R: 255, G: 120, B: 40}}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		o.show = !o.show
	}
}

// Draw renders the neighbor heat for cells on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image, cells []core.Cell) {
	if !o.show || o.size.Cells() == 0 {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(o.size.W, o.size.H)
		o.buf = make([]byte, 4*o.size.Cells())
	}
	o.counts = core.NeighborCounts(cells, o.size, o.counts)
	fillHeatRGBA(o.buf, o.counts, o.tint)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
