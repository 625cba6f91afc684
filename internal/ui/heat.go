package ui

import (
	"image/color"
	"math"
)

const (
	heatMaxAlpha = 150.0
	heatGlowBase = 0.4
	heatBias     = 0.75
)

// fillHeatRGBA writes one RGBA pixel per neighbor count into buf. Zero counts
// stay transparent and eight neighbors reach full intensity.
func fillHeatRGBA(buf []byte, counts []uint8, tint color.RGBA) {
	for i, n := range counts {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		if n == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		intensity := float64(n) / 8
		if intensity > 1 {
			intensity = 1
		}
		glow := heatGlowBase + (1-heatGlowBase)*math.Sqrt(intensity)
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(math.Round(heatMaxAlpha * math.Pow(intensity, heatBias)))
	}
}

func scaleComponent(v uint8, f float64) uint8 {
	out := math.Round(float64(v) * f)
	if out > 255 {
		return 255
	}
	if out < 0 {
		return 0
	}
	return uint8(out)
}
