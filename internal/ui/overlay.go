//go:build ebiten

package ui

import (
	"illness-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay tints cells by state on top of the grayscale grid. Key 1 toggles
// illed cells, key 2 infected cells.
type Overlay struct {
	sim          core.Sim
	scale        int
	showIlled    bool
	showInfected bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showIlled = !o.showIlled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showInfected = !o.showInfected
	}
}

// Draw renders the enabled tints onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showIlled && !o.showInfected {
		return
	}
	size := o.sim.Size()
	total := size.Cells()
	cells := o.sim.Cells()
	if total == 0 || len(cells) != total {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	fillStateMask(o.buf, cells, o.showIlled, o.showInfected)
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
