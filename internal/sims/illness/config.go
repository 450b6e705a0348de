package illness

import (
	"errors"
	"fmt"
	"strconv"
)

// ZeroInfectedPolicy decides what an infected cell becomes when none of its
// neighbours is infected, where the growth rule would divide by zero.
type ZeroInfectedPolicy uint8

const (
	// ZeroInfectedHold keeps the cell at its current value.
	ZeroInfectedHold ZeroInfectedPolicy = iota
	// ZeroInfectedSaturate treats the quotient as +Inf, so the cell saturates to 255.
	ZeroInfectedSaturate
)

func (p ZeroInfectedPolicy) String() string {
	switch p {
	case ZeroInfectedHold:
		return "hold"
	case ZeroInfectedSaturate:
		return "saturate"
	default:
		return "unknown(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseZeroInfectedPolicy maps "hold" or "saturate" to a policy.
func ParseZeroInfectedPolicy(s string) (ZeroInfectedPolicy, error) {
	switch s {
	case "hold":
		return ZeroInfectedHold, nil
	case "saturate":
		return ZeroInfectedSaturate, nil
	}
	return 0, fmt.Errorf("unknown zero-infected policy %q", s)
}

// Params holds the transition rule constants.
type Params struct {
	K1 float32 // infection divisor
	K2 float32 // illness divisor
	G  uint8   // growth increment

	ZeroInfected ZeroInfectedPolicy
}

// Validate rejects divisors that would make the healthy-cell rule undefined.
func (p Params) Validate() error {
	if !(p.K1 > 0) {
		return fmt.Errorf("k1 must be positive, got %v", p.K1)
	}
	if !(p.K2 > 0) {
		return fmt.Errorf("k2 must be positive, got %v", p.K2)
	}
	if p.ZeroInfected > ZeroInfectedSaturate {
		return fmt.Errorf("invalid zero-infected policy %d", p.ZeroInfected)
	}
	return nil
}

// Config controls the illness simulation.
type Config struct {
	Width  int
	Height int

	Seed        int64
	Generations int

	Params Params
}

// DefaultConfig returns the 200x160, 480 generation setup.
func DefaultConfig() Config {
	return Config{
		Width:       200,
		Height:      160,
		Seed:        1,
		Generations: 480,
		Params: Params{
			K1: 2.0,
			K2: 3.0,
			G:  3,
		},
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.New("generations must not be negative")
	}
	return c.Params.Validate()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["k1"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.K1 = float32(parsed)
		}
	}
	if v, ok := cfg["k2"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.K2 = float32(parsed)
		}
	}
	if v, ok := cfg["g"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.G = uint8(parsed)
		}
	}
	if v, ok := cfg["zero_infected"]; ok {
		if parsed, err := ParseZeroInfectedPolicy(v); err == nil {
			c.Params.ZeroInfected = parsed
		}
	}
	return c
}
