package app

import (
	"flag"
	"testing"
)

func TestBindParsesRunFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("illness", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "12", "-generations", "5", "-out", "frames", "-set", "k1=1.5", "-set", "g = 7", "-chart", "c.png"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12 || cfg.Generations != 5 || cfg.Out != "frames" || cfg.Chart != "c.png" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	m := cfg.Sets.Map()
	if m["k1"] != "1.5" || m["g"] != "7" {
		t.Fatalf("unexpected overrides %v", m)
	}
}

func TestDefaultsReproduceReferenceRun(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("illness", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if cfg.Out != "png" || cfg.Prefix != "foo" || cfg.Video != "" || cfg.CSV != "" || cfg.Chart != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	cfg.Seed = 1
	sc, err := SimConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 200 || sc.Height != 160 || sc.Generations != 480 {
		t.Fatalf("unexpected sim defaults %+v", sc)
	}
}

func TestKVListRejectsMalformed(t *testing.T) {
	var l KVList
	if err := l.Set("k1"); err == nil {
		t.Fatal("expected error for missing '='")
	}
	if err := l.Set("k1=2"); err != nil {
		t.Fatal(err)
	}
	if l.String() != "k1=2" {
		t.Fatalf("String() = %q", l.String())
	}
}
