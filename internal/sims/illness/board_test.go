package illness

import (
	"errors"
	"slices"
	"testing"

	"illness-ca/internal/core"
)

func seededBoard(t *testing.T, w, h int, seed int64) *Board {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	b := NewWithConfig(cfg)
	b.Seed(core.NewRNG(seed))
	return b
}

func mustSet(t *testing.T, b *Board, x, y int, v uint8) {
	t.Helper()
	if err := b.SetValue(x, y, v); err != nil {
		t.Fatalf("SetValue(%d,%d): %v", x, y, err)
	}
}

func TestNewBoardIsZeroFilled(t *testing.T) {
	b := NewBoard(200, 160, DefaultConfig().Params)
	if got := len(b.Cells()); got != 200*160 {
		t.Fatalf("expected %d cells, got %d", 200*160, got)
	}
	for i, v := range b.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, want 0", i, v)
		}
	}
	if b.Size() != (core.Size{W: 200, H: 160}) {
		t.Fatalf("unexpected size %+v", b.Size())
	}
}

func TestValueOutOfBounds(t *testing.T) {
	b := NewBoard(200, 160, DefaultConfig().Params)
	if _, err := b.Value(200, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Value(200,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.Value(0, 160); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Value(0,160) err = %v, want ErrOutOfBounds", err)
	}
	if err := b.SetValue(-1, 5, 1); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("SetValue(-1,5) err = %v, want ErrOutOfBounds", err)
	}
	mustSet(t, b, 199, 159, 42)
	if v, err := b.Value(199, 159); err != nil || v != 42 {
		t.Fatalf("Value(199,159) = %d, %v", v, err)
	}
	if got := b.Cells()[159*200+199]; got != 42 {
		t.Fatalf("row-major index holds %d, want 42", got)
	}
}

func TestNeighborhoodWrapsCorners(t *testing.T) {
	b := NewBoard(200, 160, DefaultConfig().Params)
	coords := func(x, y int) [8][2]int {
		xl, xr := (x+199)%200, (x+1)%200
		yu, yd := (y+159)%160, (y+1)%160
		return [8][2]int{{xl, yu}, {x, yu}, {xr, yu}, {xl, y}, {xr, y}, {xl, yd}, {x, yd}, {xr, yd}}
	}

	for _, c := range [][2]int{{0, 0}, {199, 0}, {0, 159}, {199, 159}, {100, 0}, {0, 80}, {57, 93}} {
		for i := range b.Cells() {
			b.Cells()[i] = 0
		}
		expected := coords(c[0], c[1])
		var want Neighborhood
		for i, p := range expected {
			want[i] = uint8(10 + i)
			mustSet(t, b, p[0], p[1], want[i])
		}
		if got := b.Neighborhood(c[0], c[1]); got != want {
			t.Fatalf("Neighborhood(%d,%d) = %v, want %v", c[0], c[1], got, want)
		}
	}

	for i := range b.Cells() {
		b.Cells()[i] = 0
	}
	mustSet(t, b, 199, 159, 77)
	if got := b.Neighborhood(0, 0)[0]; got != 77 {
		t.Fatalf("NW neighbour of (0,0) = %d, want value at (199,159)", got)
	}
}

func TestNeighborhoodInvariants(t *testing.T) {
	b := seededBoard(t, 37, 23, 5)
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			n := b.Neighborhood(x, y)
			healthy := 0
			var total uint16
			for _, v := range n {
				if v == 0 {
					healthy++
				}
				total += uint16(v)
			}
			if got := int(b.CountInfected(x, y)) + int(b.CountIlled(x, y)) + healthy; got != 8 {
				t.Fatalf("(%d,%d): infected+illed+healthy = %d, want 8", x, y, got)
			}
			own, err := b.Value(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := b.Sum(x, y), uint16(own)+total; got != want {
				t.Fatalf("(%d,%d): Sum = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestSumMaximum(t *testing.T) {
	b := NewBoard(3, 3, DefaultConfig().Params)
	for i := range b.Cells() {
		b.Cells()[i] = 255
	}
	if got := b.Sum(1, 1); got != 9*255 {
		t.Fatalf("Sum = %d, want %d", got, 9*255)
	}
}

func TestStepUsesPreviousGenerationOnly(t *testing.T) {
	b := seededBoard(t, 31, 17, 11)
	p := b.Params()
	want := make([]uint8, len(b.Cells()))
	for y := 0; y < 17; y++ {
		for x := 0; x < 31; x++ {
			v, _ := b.Value(x, y)
			want[y*31+x] = Next(v, b.Neighborhood(x, y), p)
		}
	}
	b.Step()
	if !slices.Equal(want, b.Cells()) {
		t.Fatal("step result differs from rule applied to the previous generation")
	}
	if b.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", b.Generation())
	}
}

func TestStepDeterministic(t *testing.T) {
	a := seededBoard(t, 40, 30, 99)
	b := seededBoard(t, 40, 30, 99)
	for i := 0; i < 12; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("boards diverged at generation %d", i+1)
		}
	}
}

func TestStepClearsIlledCells(t *testing.T) {
	b := seededBoard(t, 64, 48, 3)
	var illed []int
	for i, v := range b.Cells() {
		if v == Illed {
			illed = append(illed, i)
		}
	}
	if len(illed) == 0 {
		t.Fatal("seeded board should contain illed cells")
	}
	b.Step()
	for _, i := range illed {
		if got := b.Cells()[i]; got != Healthy {
			t.Fatalf("cell %d was illed, now %d; want 0", i, got)
		}
	}
}

func TestStepDoesNotAllocate(t *testing.T) {
	b := seededBoard(t, 50, 40, 1)
	allocs := testing.AllocsPerRun(5, b.Step)
	if allocs != 0 {
		t.Fatalf("Step allocated %.0f times per run", allocs)
	}
}

func TestSingleIlledCornerOnSmallTorus(t *testing.T) {
	b := NewBoard(3, 3, Params{K1: 2, K2: 3, G: 3})
	mustSet(t, b, 0, 0, 255)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if got := b.CountIlled(x, y); got != 1 {
				t.Fatalf("CountIlled(%d,%d) = %d, want 1", x, y, got)
			}
		}
	}
	b.Step()
	for i, v := range b.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after step, want 0", i, v)
		}
	}
}

func TestAllHealthyFieldIsFixedPoint(t *testing.T) {
	b := NewBoard(20, 16, Params{K1: 2, K2: 3, G: 3})
	for i := 0; i < 25; i++ {
		b.Step()
	}
	for i, v := range b.Cells() {
		if v != 0 {
			t.Fatalf("cell %d became %d in an all-healthy field", i, v)
		}
	}
}

func TestIsolatedInfectedCellHolds(t *testing.T) {
	b := NewBoard(5, 5, Params{K1: 2, K2: 3, G: 3, ZeroInfected: ZeroInfectedHold})
	mustSet(t, b, 2, 2, 10)
	if got := b.CountInfected(2, 2); got != 0 {
		t.Fatalf("CountInfected = %d, want 0", got)
	}
	for i := 0; i < 3; i++ {
		b.Step()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				v, _ := b.Value(x, y)
				want := uint8(0)
				if x == 2 && y == 2 {
					want = 10
				}
				if v != want {
					t.Fatalf("step %d: (%d,%d) = %d, want %d", i+1, x, y, v, want)
				}
			}
		}
	}
}

func TestIsolatedInfectedCellSaturates(t *testing.T) {
	b := NewBoard(5, 5, Params{K1: 2, K2: 3, G: 3, ZeroInfected: ZeroInfectedSaturate})
	mustSet(t, b, 2, 2, 10)
	b.Step()
	if v, _ := b.Value(2, 2); v != 255 {
		t.Fatalf("isolated infected cell = %d, want 255", v)
	}
	b.Step()
	for i, v := range b.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d, want all healthy after the illed cell clears", i, v)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	b := NewWithConfig(cfg)

	b.Reset(0)
	initial := append([]uint8(nil), b.Cells()...)
	b.Step()
	b.Step()
	b.Reset(0)
	if !slices.Equal(initial, b.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if b.Generation() != 0 {
		t.Fatalf("generation = %d after reset, want 0", b.Generation())
	}

	b.Reset(777)
	if slices.Equal(initial, b.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	b := seededBoard(t, 7, 5, 2)
	i := 0
	b.Each(func(x, y int, v uint8) {
		if x != i%7 || y != i/7 {
			t.Fatalf("visit %d at (%d,%d)", i, x, y)
		}
		if v != b.Cells()[i] {
			t.Fatalf("visit %d value %d, want %d", i, v, b.Cells()[i])
		}
		i++
	})
	if i != 35 {
		t.Fatalf("visited %d cells, want 35", i)
	}
}

func TestCensus(t *testing.T) {
	b := NewBoard(4, 2, DefaultConfig().Params)
	copy(b.Cells(), []uint8{0, 0, 0, 1, 128, 254, 255, 255})
	c := b.Census()
	if c.Healthy != 3 || c.Infected != 3 || c.Illed != 2 || c.Total() != 8 {
		t.Fatalf("unexpected census %+v", c)
	}
	if got := c.Fraction(StateIlled); got != 0.25 {
		t.Fatalf("illed fraction = %v, want 0.25", got)
	}
	if (Census{}).Fraction(StateHealthy) != 0 {
		t.Fatal("empty census fraction should be 0")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["illness"]
	if !ok {
		t.Fatal("illness sim not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "9"})
	if sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("factory ignored size overrides: %+v", sim.Size())
	}
}
