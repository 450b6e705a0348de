package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim         string
	Seed        int64
	Generations int

	Out      string
	Prefix   string
	Video    string
	FPS      int
	CSV      string
	Chart    string
	LogEvery int

	Scale int
	TPS   int
	Rate  int

	Sets KVList
}

// NewConfig returns a Config populated with the reference-run defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "illness",
		Generations: -1,
		Out:         "png",
		Prefix:      "foo",
		FPS:         24,
		LogEvery:    60,
		Scale:       3,
		TPS:         60,
		Rate:        15,
	}
}

// Bind attaches the run configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 picks one from the clock)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to render (-1 uses the simulation default)")
	fs.StringVar(&c.Out, "out", c.Out, "directory receiving frame PNGs")
	fs.StringVar(&c.Prefix, "prefix", c.Prefix, "frame file name prefix")
	fs.StringVar(&c.Video, "video", c.Video, "optional MJPEG AVI output path")
	fs.IntVar(&c.FPS, "fps", c.FPS, "video frames per second")
	fs.StringVar(&c.CSV, "csv", c.CSV, "optional census CSV output path")
	fs.StringVar(&c.Chart, "chart", c.Chart, "optional census chart PNG output path")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "log the census every N generations (0 disables)")
	fs.Var(&c.Sets, "set", "simulation override in key=value form (repeatable)")
}

// BindViewer attaches the live-viewer parameters to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the simulation default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Var(&c.Sets, "set", "simulation override in key=value form (repeatable)")
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
