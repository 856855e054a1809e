package fire

import (
	"math"

	"firefield/internal/core"
)

// Layout is the set of dimensions derived from a viewport.
type Layout struct {
	Viewport core.Size
	Mobile   bool

	// Scale is the downscale factor between display pixels and grid cells.
	Scale int
	Grid  core.Size

	MaxFlameHeight int
	AshCount       int
}

// ComputeLayout derives grid and flame dimensions for a viewport. Negative
// viewport sizes are treated as zero; grid dimensions never fall below the
// configured minimums, which are themselves at least one cell.
func ComputeLayout(cfg Config, viewport core.Size) Layout {
	w, h := max(viewport.W, 0), max(viewport.H, 0)
	mobile := w < cfg.MobileBreakpoint

	scale := cfg.ScaleDesktop
	capFraction := cfg.FlameCapDesktop
	ash := cfg.Ash.CountDesktop
	if mobile {
		scale = cfg.ScaleMobile
		capFraction = cfg.FlameCapMobile
		ash = cfg.Ash.CountMobile
	}
	scale = max(scale, 1)

	divisor := cfg.GridHeightDivisor
	if divisor <= 0 {
		divisor = 1
	}

	gridW := max(max(cfg.MinGridWidth, 1), w/scale)
	gridH := max(max(cfg.MinGridHeight, 1), int(math.Floor(float64(h)/float64(scale)/divisor)))

	return Layout{
		Viewport:       core.Size{W: w, H: h},
		Mobile:         mobile,
		Scale:          scale,
		Grid:           core.Size{W: gridW, H: gridH},
		MaxFlameHeight: max(cfg.MinFlameHeight, int(math.Floor(float64(h)*capFraction))),
		AshCount:       max(ash, 0),
	}
}

// FlameHeight is the displayed height of the upscaled grid.
func (l Layout) FlameHeight() float64 {
	return math.Min(float64(l.Grid.H*l.Scale), float64(l.MaxFlameHeight))
}

// FlameTop is the y offset that puts the flame base on the viewport bottom.
func (l Layout) FlameTop() float64 {
	return float64(l.Viewport.H) - l.FlameHeight()
}
