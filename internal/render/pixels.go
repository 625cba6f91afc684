package render

import (
	"image/color"

	"torus-life/internal/core"
)

// fillBinaryRGBA converts cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, live, dead color.Color) {
	rOn, gOn, bOn, aOn := live.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Live {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
