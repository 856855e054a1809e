package fire

import "firefield/internal/core"

// Field is the low-resolution intensity grid. The bottom row is the heat
// source; intensity moves up one row per step while decaying and drifting.
type Field struct {
	grid *core.ByteGrid
	rng  *core.RNG

	seedMin    uint8
	seedSpread uint8
	decayStep  int
}

// NewField allocates a zero-filled field.
func NewField(w, h int, cfg Config, rng *core.RNG) *Field {
	f := &Field{grid: core.NewByteGrid(w, h), rng: rng}
	f.configure(cfg)
	return f
}

func (f *Field) configure(cfg Config) {
	f.seedMin = cfg.SeedMin
	f.seedSpread = cfg.SeedSpread
	if int(f.seedMin)+int(f.seedSpread) > 255 {
		f.seedSpread = 255 - f.seedMin
	}
	f.decayStep = max(cfg.DecayStep, 0)
}

// Grid exposes the intensity grid.
func (f *Field) Grid() *core.ByteGrid { return f.grid }

// Seed resamples the bottom row into [seedMin, seedMin+seedSpread].
func (f *Field) Seed() {
	row := f.grid.Row(f.grid.H - 1)
	hi := f.seedMin + f.seedSpread
	for x := range row {
		row[x] = f.rng.Uint8Range(f.seedMin, hi)
	}
}

// Step seeds the source row and propagates every row upward. Source rows are
// visited from y=1 down to the bottom, so destination row y-1 is written
// before row y is itself overwritten: each destination reads the previous
// tick's value and heat travels one row per step. A single draw d in {0,1,2}
// sets both the decay (d*decayStep) and the horizontal drift (d-1), clamped
// to the grid.
func (f *Field) Step() {
	f.Seed()
	g := f.grid
	cells := g.Cells()
	for y := 1; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			d := f.rng.IntN(3)
			v := int(cells[g.Index(x, y)]) - d*f.decayStep
			if v < 0 {
				v = 0
			}
			cells[g.Index(g.ClampX(x+d-1), y-1)] = uint8(v)
		}
	}
}

// Reach returns the number of rows, counted from the bottom, up to and
// including the highest row holding any heat.
func (f *Field) Reach() int {
	g := f.grid
	for y := 0; y < g.H; y++ {
		for _, v := range g.Row(y) {
			if v != 0 {
				return g.H - y
			}
		}
	}
	return 0
}
