package render

import (
	"image/color"
	"sort"
)

// GradientStop is a colour at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear colour ramp defined by ordered stops.
type Gradient struct {
	Stops []GradientStop
}

// Normalized returns the stops sorted by offset, clamped to [0, 1], and padded
// so that offsets 0 and 1 are always present.
func (g Gradient) Normalized() []GradientStop {
	if len(g.Stops) == 0 {
		return nil
	}
	stops := make([]GradientStop, len(g.Stops))
	copy(stops, g.Stops)
	for i := range stops {
		stops[i].Offset = clamp01(stops[i].Offset)
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	if stops[0].Offset > 0 {
		stops = append([]GradientStop{{Offset: 0, Color: stops[0].Color}}, stops...)
	}
	if last := stops[len(stops)-1]; last.Offset < 1 {
		stops = append(stops, GradientStop{Offset: 1, Color: last.Color})
	}
	return stops
}

// At returns the interpolated colour at offset t. Gradients without stops are
// transparent everywhere.
func (g Gradient) At(t float64) color.NRGBA {
	stops := g.Normalized()
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpNRGBA(a.Color, b.Color, (t-a.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
