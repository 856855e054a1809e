package fire

import (
	"testing"

	"firefield/internal/core"
)

func TestSeedFillsBottomRowInRange(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(64, 16, cfg, core.NewRNG(1))
	for i := 0; i < 20; i++ {
		f.Seed()
		for x, v := range f.Grid().Row(f.Grid().H - 1) {
			if v < 200 {
				t.Fatalf("seed %d at column %d below 200", v, x)
			}
		}
	}
	for y := 0; y < f.Grid().H-1; y++ {
		for _, v := range f.Grid().Row(y) {
			if v != 0 {
				t.Fatalf("Seed touched row %d", y)
			}
		}
	}
}

func TestSeedClampsSpread(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedMin = 250
	cfg.SeedSpread = 100
	f := NewField(32, 4, cfg, core.NewRNG(2))
	f.Seed()
	for _, v := range f.Grid().Row(3) {
		if v < 250 {
			t.Fatalf("seed %d below 250", v)
		}
	}
}

func TestStepHeatRisesAndDecays(t *testing.T) {
	cfg := DefaultConfig()
	f := NewField(48, 80, cfg, core.NewRNG(3))
	for i := 0; i < 200; i++ {
		f.Step()
	}
	g := f.Grid()
	// Decay averages 6 per row, so heat dies out well before 79 rows.
	if r := f.Reach(); r < 2 || r >= g.H {
		t.Fatalf("reach = %d, want within [2, %d)", r, g.H)
	}
	var sumBottom, sumHigh int
	for x, v := range g.Row(g.H - 1) {
		sumBottom += int(v)
		sumHigh += int(g.Row(g.H - 41)[x])
	}
	if sumHigh >= sumBottom {
		t.Fatalf("row 40 above source (%d) not cooler than source (%d)", sumHigh, sumBottom)
	}
}

func TestStepWithoutDecayCarriesFullHeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedMin = 255
	cfg.SeedSpread = 0
	cfg.DecayStep = 0
	f := NewField(8, 4, cfg, core.NewRNG(4))
	for i := 0; i < 80; i++ {
		f.Step()
	}
	for i, v := range f.Grid().Cells() {
		if v != 255 {
			t.Fatalf("cell %d = %d, want 255 with no decay", i, v)
		}
	}
}

func TestStepSingleColumnStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()
	for _, w := range []int{1, 2} {
		f := NewField(w, 3, cfg, core.NewRNG(5))
		for i := 0; i < 50; i++ {
			f.Step()
		}
		if len(f.Grid().Cells()) != w*3 {
			t.Fatalf("grid resized to %d cells", len(f.Grid().Cells()))
		}
	}
}

func TestReachEmptyField(t *testing.T) {
	f := NewField(10, 10, DefaultConfig(), core.NewRNG(6))
	if r := f.Reach(); r != 0 {
		t.Fatalf("reach of cold field = %d, want 0", r)
	}
	f.Seed()
	if r := f.Reach(); r != 1 {
		t.Fatalf("reach after seeding = %d, want 1", r)
	}
}

func TestStepMovesHeatOneRowPerTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DecayStep = 0
	f := NewField(16, 20, cfg, core.NewRNG(8))
	for step := 1; step <= 10; step++ {
		f.Step()
		// The seed lands on the source row, then travels one row per step.
		if r := f.Reach(); r != step+1 {
			t.Fatalf("reach after %d steps = %d, want %d", step, r, step+1)
		}
	}
}
