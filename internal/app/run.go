package app

import (
	"fmt"
	"log"

	"illness-ca/internal/sims/illness"
)

// Run records the current generation and then steps the board, generations
// times. Frame i therefore shows the board before the i-th step. Progress is
// logged every logEvery generations when logger is non-nil.
func Run(b *illness.Board, generations int, rec Recorder, logger *log.Logger, logEvery int) error {
	for i := 0; i < generations; i++ {
		if err := rec.Record(i, b); err != nil {
			return fmt.Errorf("generation %d: %w", i, err)
		}
		if logger != nil && logEvery > 0 && (i%logEvery == 0 || i == generations-1) {
			c := b.Census()
			logger.Printf("generation %4d/%d healthy=%d infected=%d illed=%d",
				i, generations, c.Healthy, c.Infected, c.Illed)
		}
		b.Step()
	}
	return nil
}

// Recorders builds the recorder set requested by cfg for a board of the
// given size. Frame PNGs are always written.
func Recorders(cfg *Config, b *illness.Board) (MultiRecorder, error) {
	frames, err := NewFrameRecorder(cfg.Out, cfg.Prefix)
	if err != nil {
		return nil, err
	}
	recs := MultiRecorder{frames}
	if cfg.Video != "" {
		size := b.Size()
		video, err := NewVideoRecorder(cfg.Video, size.W, size.H, cfg.FPS)
		if err != nil {
			recs.Close()
			return nil, err
		}
		recs = append(recs, video)
	}
	if cfg.CSV != "" {
		census, err := NewCensusRecorder(cfg.CSV)
		if err != nil {
			recs.Close()
			return nil, err
		}
		recs = append(recs, census)
	}
	if cfg.Chart != "" {
		recs = append(recs, NewChartRecorder(cfg.Chart))
	}
	return recs, nil
}

// SimConfig resolves the illness configuration from the -set overrides and
// the explicit flags.
func SimConfig(cfg *Config) (illness.Config, error) {
	sc := illness.FromMap(cfg.Sets.Map())
	if cfg.Seed != 0 {
		sc.Seed = cfg.Seed
	}
	if cfg.Generations >= 0 {
		sc.Generations = cfg.Generations
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("invalid configuration: %w", err)
	}
	return sc, nil
}
