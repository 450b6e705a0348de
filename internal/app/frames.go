package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"illness-ca/internal/render"
	"illness-ca/internal/sims/illness"
)

// FrameRecorder writes one grayscale PNG per generation.
type FrameRecorder struct {
	Dir    string
	Prefix string
}

// NewFrameRecorder creates dir if needed.
func NewFrameRecorder(dir, prefix string) (*FrameRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	return &FrameRecorder{Dir: dir, Prefix: prefix}, nil
}

// Path returns the file name used for generation gen.
func (r *FrameRecorder) Path(gen int) string {
	return filepath.Join(r.Dir, fmt.Sprintf("%s-%04d.png", r.Prefix, gen))
}

// Record encodes the current board as an 8-bit grayscale PNG.
func (r *FrameRecorder) Record(gen int, b *illness.Board) error {
	img := render.GrayImage(b.Size(), b.Cells())
	if img == nil {
		return fmt.Errorf("frame %d: board has no cells", gen)
	}
	return writePNG(r.Path(gen), img)
}

// Close is a no-op; every frame is flushed as it is written.
func (r *FrameRecorder) Close() error { return nil }

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
