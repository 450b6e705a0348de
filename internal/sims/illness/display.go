package illness

import "image/color"

var grayPalette = buildGrayPalette()

// Palette maps each cell value to the gray level of the same intensity.
func (b *Board) Palette() []color.RGBA {
	return grayPalette
}

func buildGrayPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		v := uint8(i)
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}
