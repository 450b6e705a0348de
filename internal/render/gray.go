package render

import (
	"image"

	"illness-ca/internal/core"
)

// GrayImage copies cells into a new single-channel raster of the given size,
// so pixel (x, y) holds cells[y*W+x]. It returns nil when the lengths disagree.
func GrayImage(size core.Size, cells []uint8) *image.Gray {
	if size.W <= 0 || size.H <= 0 || len(cells) != size.Cells() {
		return nil
	}
	img := image.NewGray(image.Rect(0, 0, size.W, size.H))
	for y := 0; y < size.H; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+size.W], cells[y*size.W:(y+1)*size.W])
	}
	return img
}
