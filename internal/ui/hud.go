//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/core"
)

const (
	panelPadding = 6
	lineHeight   = 16
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel below the simulation view.
type HUD struct {
	sim     parameterProvider
	width   int
	panel   *ebiten.Image
	message string
	locked  bool
}

// PanelHeight is the vertical space the HUD needs.
func PanelHeight() int { return 2*panelPadding + 4*lineHeight }

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim parameterProvider, width int) *HUD {
	if width < 1 {
		width = 1
	}
	return &HUD{sim: sim, width: width}
}

// SetMessage shows msg under the status line until replaced.
func (h *HUD) SetMessage(msg string) { h.message = msg }

// SetLocked greys out the prompt while manual edits are disabled.
func (h *HUD) SetLocked(locked bool) { h.locked = locked }

// Draw paints the panel with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, PanelHeight())
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	for i, line := range StatusLines(h.sim.Parameters(), h.message) {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 1 && h.locked {
			fg = color.RGBA{R: 110, G: 110, B: 120, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-3, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
