package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Byte returns a uniformly distributed value in [0, 255].
func (r *RNG) Byte() uint8 {
	return uint8(r.r.Uint32())
}

// FillBytes overwrites buf with independent uniform bytes.
func (r *RNG) FillBytes(buf []uint8) {
	for i := range buf {
		buf[i] = r.Byte()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
