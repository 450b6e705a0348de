package ui

import "image/color"

var (
	illedTint    = color.RGBA{R: 230, G: 40, B: 40, A: 200}
	infectedTint = color.RGBA{R: 255, G: 170, B: 30, A: 0}
)

// fillStateMask writes RGBA overlay pixels for cells. Saturated cells get the
// illed tint when showIlled is set; intermediate values get the infected tint
// with alpha proportional to their value when showInfected is set. Everything
// else is transparent.
func fillStateMask(buf []byte, cells []uint8, showIlled, showInfected bool) {
	for i, c := range cells {
		base := i * 4
		var col color.RGBA
		switch {
		case c == 255 && showIlled:
			col = illedTint
		case c > 0 && c < 255 && showInfected:
			col = infectedTint
			col.A = 60 + uint8(uint16(c)*160/254)
		}
		// ebiten expects premultiplied alpha.
		buf[base+0] = uint8(uint16(col.R) * uint16(col.A) / 255)
		buf[base+1] = uint8(uint16(col.G) * uint16(col.A) / 255)
		buf[base+2] = uint8(uint16(col.B) * uint16(col.A) / 255)
		buf[base+3] = col.A
	}
}
