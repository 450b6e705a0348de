package illness

import (
	"illness-ca/internal/core"
)

// Board is a toroidal grid of cell values stepped with a double buffer.
type Board struct {
	cfg Config

	cur *core.ByteGrid
	nxt *core.ByteGrid

	generation int
}

// NewBoard returns a zero-filled board of the given size using params.
func NewBoard(w, h int, p Params) *Board {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params = p
	return NewWithConfig(cfg)
}

// NewWithConfig returns a zero-filled board configured from cfg.
func NewWithConfig(cfg Config) *Board {
	cur := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &Board{
		cfg: cfg,
		cur: cur,
		nxt: core.NewByteGrid(cur.W, cur.H),
	}
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "illness" }

// Size reports the grid dimensions.
func (b *Board) Size() core.Size { return b.cur.Size() }

// Cells exposes the current generation in row-major order. Callers must treat
// it as read-only; it is replaced by the scratch buffer on every Step.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Config returns the active configuration.
func (b *Board) Config() Config { return b.cfg }

// Params returns the active rule parameters.
func (b *Board) Params() Params { return b.cfg.Params }

// SetParams replaces the rule parameters used by Step.
func (b *Board) SetParams(p Params) { b.cfg.Params = p }

// Generation is the number of steps applied since the last seed.
func (b *Board) Generation() int { return b.generation }

// Reset reseeds the board. A zero seed falls back to the configured one.
func (b *Board) Reset(seed int64) {
	if seed == 0 {
		seed = b.cfg.Seed
	}
	b.Seed(core.NewRNG(seed))
}

// Seed overwrites every cell with an independent uniform byte drawn from rng.
func (b *Board) Seed(rng *core.RNG) {
	rng.FillBytes(b.cur.Cells())
	b.nxt.Clear()
	b.generation = 0
}

// Value returns the cell at (x, y) without wrapping.
func (b *Board) Value(x, y int) (uint8, error) { return b.cur.At(x, y) }

// SetValue stores v at (x, y) without wrapping.
func (b *Board) SetValue(x, y int, v uint8) error { return b.cur.Set(x, y, v) }

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(x, y int, v uint8)) {
	w := b.cur.W
	for i, v := range b.cur.Cells() {
		fn(i%w, i/w, v)
	}
}

// Neighborhood returns the eight toroidally wrapped neighbours of (x, y).
// Coordinates are expected in range; use Value for checked access.
func (b *Board) Neighborhood(x, y int) Neighborhood {
	return neighborhood(b.cur, x, y)
}

// CountInfected counts infected neighbours of (x, y).
func (b *Board) CountInfected(x, y int) uint8 { return b.Neighborhood(x, y).CountInfected() }

// CountIlled counts illed neighbours of (x, y).
func (b *Board) CountIlled(x, y int) uint8 { return b.Neighborhood(x, y).CountIlled() }

// Sum adds the value at (x, y) and its eight neighbours.
func (b *Board) Sum(x, y int) uint16 {
	return b.Neighborhood(x, y).Sum() + uint16(b.cur.Cells()[b.cur.Index(x, y)])
}

// Step advances the board one generation using the configured params.
func (b *Board) Step() { b.StepWith(b.cfg.Params) }

// StepWith advances the board one generation using p. Every new value is
// derived from the previous generation only.
func (b *Board) StepWith(p Params) {
	w, h := b.cur.W, b.cur.H
	src := b.cur.Cells()
	dst := b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst[idx] = Next(src[idx], neighborhood(b.cur, x, y), p)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	b.generation++
}

func neighborhood(g *core.ByteGrid, x, y int) Neighborhood {
	w, h := g.W, g.H
	cells := g.Cells()
	x1 := (x + w - 1) % w
	x2 := (x + 1) % w
	y1 := (y + h - 1) % h
	y2 := (y + 1) % h
	return Neighborhood{
		cells[y1*w+x1], cells[y1*w+x], cells[y1*w+x2],
		cells[y*w+x1], cells[y*w+x2],
		cells[y2*w+x1], cells[y2*w+x], cells[y2*w+x2],
	}
}

func init() {
	core.Register("illness", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
