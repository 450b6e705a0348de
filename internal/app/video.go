package app

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"illness-ca/internal/render"
	"illness-ca/internal/sims/illness"
)

// VideoRecorder appends every generation to an MJPEG AVI file.
type VideoRecorder struct {
	path string
	aw   mjpeg.AviWriter
	buf  bytes.Buffer
	opts jpeg.Options
}

// NewVideoRecorder opens path for a w x h video at fps frames per second.
func NewVideoRecorder(path string, w, h, fps int) (*VideoRecorder, error) {
	if fps <= 0 {
		fps = 24
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &VideoRecorder{path: path, aw: aw, opts: jpeg.Options{Quality: 90}}, nil
}

// Record JPEG-encodes the board and appends it as a frame.
func (r *VideoRecorder) Record(gen int, b *illness.Board) error {
	img := render.GrayImage(b.Size(), b.Cells())
	if img == nil {
		return fmt.Errorf("video frame %d: board has no cells", gen)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("encode video frame %d: %w", gen, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("add video frame %d: %w", gen, err)
	}
	return nil
}

// Close finalizes the AVI index.
func (r *VideoRecorder) Close() error {
	if err := r.aw.Close(); err != nil {
		return fmt.Errorf("close video %s: %w", r.path, err)
	}
	return nil
}
