package app

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"illness-ca/internal/sims/illness"
)

// CensusRecorder writes one CSV row per generation.
type CensusRecorder struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCensusRecorder creates path and writes the header row.
func NewCensusRecorder(path string) (*CensusRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create census %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"generation", "healthy", "infected", "illed"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("write census header: %w", err)
	}
	return &CensusRecorder{path: path, f: f, w: w}, nil
}

// Record appends the board's census.
func (r *CensusRecorder) Record(gen int, b *illness.Board) error {
	c := b.Census()
	row := []string{
		strconv.Itoa(gen),
		strconv.Itoa(c.Healthy),
		strconv.Itoa(c.Infected),
		strconv.Itoa(c.Illed),
	}
	if err := r.w.Write(row); err != nil {
		return fmt.Errorf("write census row %d: %w", gen, err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (r *CensusRecorder) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.f.Close()
		return fmt.Errorf("flush census %s: %w", r.path, err)
	}
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("close census %s: %w", r.path, err)
	}
	return nil
}
