package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"illness-ca/internal/sims/illness"
)

// ChartRecorder collects the census of every generation and plots it when
// closed.
type ChartRecorder struct {
	path    string
	history []illness.Census
}

// NewChartRecorder returns a recorder that writes its chart to path on Close.
func NewChartRecorder(path string) *ChartRecorder {
	return &ChartRecorder{path: path}
}

// Record stores the census for gen.
func (r *ChartRecorder) Record(gen int, b *illness.Board) error {
	c := b.Census()
	c.Generation = gen
	r.history = append(r.history, c)
	return nil
}

// History returns the censuses collected so far.
func (r *ChartRecorder) History() []illness.Census { return r.history }

// Close renders the collected history as a PNG line chart.
func (r *ChartRecorder) Close() error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", r.path, err)
	}
	if err := RenderCensusChart(f, r.history); err != nil {
		f.Close()
		return fmt.Errorf("render chart %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart %s: %w", r.path, err)
	}
	return nil
}

// RenderCensusChart plots the healthy, infected and illed percentages over
// generations as a PNG.
func RenderCensusChart(w io.Writer, history []illness.Census) error {
	if len(history) < 2 {
		return errors.New("need at least two generations to chart")
	}
	xs := make([]float64, len(history))
	healthy := make([]float64, len(history))
	infected := make([]float64, len(history))
	illed := make([]float64, len(history))
	for i, c := range history {
		xs[i] = float64(c.Generation)
		healthy[i] = 100 * c.Fraction(illness.StateHealthy)
		infected[i] = 100 * c.Fraction(illness.StateInfected)
		illed[i] = 100 * c.Fraction(illness.StateIlled)
	}

	graph := chart.Chart{
		Width:  960,
		Height: 360,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "% of cells",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Healthy",
				XValues: xs,
				YValues: healthy,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Infected",
				XValues: xs,
				YValues: infected,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255}, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Illed",
				XValues: xs,
				YValues: illed,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
