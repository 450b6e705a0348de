package app

import (
	"errors"

	"illness-ca/internal/sims/illness"
)

// Recorder persists one generation of a board.
type Recorder interface {
	Record(gen int, b *illness.Board) error
	Close() error
}

// MultiRecorder fans every generation out to each recorder in order.
type MultiRecorder []Recorder

// Record stops at the first failing recorder.
func (m MultiRecorder) Record(gen int, b *illness.Board) error {
	for _, r := range m {
		if err := r.Record(gen, b); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every recorder and joins their errors.
func (m MultiRecorder) Close() error {
	var errs []error
	for _, r := range m {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
