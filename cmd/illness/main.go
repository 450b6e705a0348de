package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"illness-ca/internal/app"
	"illness-ca/internal/sims/illness"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Sim != "illness" {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	if _, pinned := cfg.Sets.Map()["seed"]; cfg.Seed == 0 && !pinned {
		cfg.Seed = time.Now().UnixNano()
	}

	sc, err := app.SimConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	board := illness.NewWithConfig(sc)
	board.Reset(sc.Seed)
	log.Printf("illness %dx%d k1=%g k2=%g g=%d zero_infected=%s seed=%d generations=%d",
		sc.Width, sc.Height, sc.Params.K1, sc.Params.K2, sc.Params.G, sc.Params.ZeroInfected, sc.Seed, sc.Generations)

	recs, err := app.Recorders(cfg, board)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	runErr := app.Run(board, sc.Generations, recs, log.Default(), cfg.LogEvery)
	if err := errors.Join(runErr, recs.Close()); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s in %s", sc.Generations, cfg.Out, time.Since(start).Round(time.Millisecond))
}
