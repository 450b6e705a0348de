package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"illness-ca/internal/sims/illness"
)

type paramSet struct {
	k1 float32
	k2 float32
	g  uint8
}

func (p paramSet) String() string {
	return fmt.Sprintf("k1=%.2f k2=%.2f g=%d", p.k1, p.k2, p.g)
}

type scenarioResult struct {
	params        paramSet
	meanInfected  float64
	peakInfected  float64
	peakStep      int
	finalInfected float64
	finalIlled    float64
	extinctAt     int
}

func main() {
	steps := flag.Int("steps", 240, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 200, "grid width")
	height := flag.Int("height", 160, "grid height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	top := flag.Int("top", 10, "results to print")
	saturate := flag.Bool("saturate", false, "isolated infected cells saturate instead of holding")
	flag.Parse()

	base := illness.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed
	if *saturate {
		base.Params.ZeroInfected = illness.ZeroInfectedSaturate
	}

	k1Options := []float32{1, 1.5, 2, 2.5, 3, 4}
	k2Options := []float32{1, 2, 3, 4, 6}
	gOptions := []uint8{1, 3, 5, 10, 20}

	var sets []paramSet
	for _, k1 := range k1Options {
		for _, k2 := range k2Options {
			for _, g := range gOptions {
				sets = append(sets, paramSet{k1: k1, k2: k2, g: g})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d)\n", len(sets), *workers, *steps, base.Width, base.Height)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	extinct := 0
	for res := range results {
		all = append(all, res)
		if res.extinctAt >= 0 {
			extinct++
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].meanInfected > all[j].meanInfected })

	fmt.Printf("\n%d/%d scenarios died out (elapsed %s)\n", extinct, len(all), time.Since(start).Round(time.Millisecond))
	fmt.Printf("\nTop %d by mean infected share:\n", *top)
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) mean=%5.1f%% peak=%5.1f%%@%d final infected=%5.1f%% illed=%5.1f%% %s\n",
			i+1, 100*res.meanInfected, 100*res.peakInfected, res.peakStep,
			100*res.finalInfected, 100*res.finalIlled, res.params)
	}
}

// runScenario steps a freshly seeded board and summarizes its infected share.
// extinctAt is the first generation with no infected or illed cells, or -1.
func runScenario(base illness.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Params.K1 = params.k1
	cfg.Params.K2 = params.k2
	cfg.Params.G = params.g

	board := illness.NewWithConfig(cfg)
	board.Reset(cfg.Seed)

	res := scenarioResult{params: params, extinctAt: -1}
	var total float64
	var last illness.Census
	for step := 0; step < steps; step++ {
		board.Step()
		last = board.Census()
		share := last.Fraction(illness.StateInfected)
		total += share
		if share > res.peakInfected {
			res.peakInfected = share
			res.peakStep = step + 1
		}
		if last.Healthy == last.Total() {
			res.extinctAt = step + 1
			break
		}
	}
	if steps > 0 {
		res.meanInfected = total / float64(steps)
	}
	res.finalInfected = last.Fraction(illness.StateInfected)
	res.finalIlled = last.Fraction(illness.StateIlled)
	return res
}
