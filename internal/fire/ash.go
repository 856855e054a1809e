package fire

import (
	"math"

	"firefield/internal/core"
)

// AshParticle is a decorative speck drifting up the viewport.
type AshParticle struct {
	X, Y    float64
	Radius  float64
	Speed   float64
	Drift   float64
	Opacity float64
}

func spawnAsh(n int, w, h float64, p AshParams, rng *core.RNG) []AshParticle {
	out := make([]AshParticle, n)
	for i := range out {
		out[i] = AshParticle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			Radius:  rng.Range(p.RadiusMin, p.RadiusSpan),
			Speed:   rng.Range(p.SpeedMin, p.SpeedSpan),
			Drift:   (rng.Float64() - 0.5) * p.DriftSpan,
			Opacity: rng.Range(p.OpacityMin, p.OpacitySpan),
		}
	}
	return out
}

// Advance moves the particle one frame within a w×h viewport. A particle that
// leaves through the top reappears below the bottom at a random x; one that
// leaves sideways wraps to the opposite side.
func (a *AshParticle) Advance(w, h float64, p AshParams, rng *core.RNG) {
	a.Y -= a.Speed
	a.X += a.Drift
	a.Opacity += (rng.Float64() - 0.5) * p.OpacityJitter
	a.Opacity = math.Max(p.OpacityFloor, math.Min(p.OpacityCeil, a.Opacity))

	if a.Y < -p.Margin {
		a.Y = h + p.Margin
		a.X = rng.Float64() * w
	}
	if a.X < -p.Margin {
		a.X = w + p.Margin
	}
	if a.X > w+p.Margin {
		a.X = -p.Margin
	}
}
