package fire

import (
	"image/color"
	"strconv"
	"time"

	"firefield/internal/render"
)

// AshParams controls the floating ash particles.
type AshParams struct {
	CountDesktop int
	CountMobile  int

	RadiusMin   float64
	RadiusSpan  float64
	SpeedMin    float64
	SpeedSpan   float64
	DriftSpan   float64
	OpacityMin  float64
	OpacitySpan float64

	OpacityFloor  float64
	OpacityCeil   float64
	OpacityJitter float64

	// Margin is how far past an edge a particle may travel before it is
	// recycled or wrapped.
	Margin float64
	Color  color.NRGBA
}

// FadeParams controls the erase gradient applied to the top of the flame.
type FadeParams struct {
	MaxHeight float64
	Ratio     float64
	Stops     []render.GradientStop
}

// Config holds the tuned constants of the fire field. Zero values are not
// meaningful; start from DefaultConfig.
type Config struct {
	MobileBreakpoint int
	ScaleDesktop     int
	ScaleMobile      int

	MinGridWidth      int
	MinGridHeight     int
	GridHeightDivisor float64

	FlameCapDesktop float64
	FlameCapMobile  float64
	MinFlameHeight  int

	SeedMin        uint8
	SeedSpread     uint8
	DecayStep      int
	UpdateInterval time.Duration

	Palette string
	Hue     float64

	Ash  AshParams
	Fade FadeParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MobileBreakpoint:  768,
		ScaleDesktop:      3,
		ScaleMobile:       4,
		MinGridWidth:      120,
		MinGridHeight:     60,
		GridHeightDivisor: 2,
		FlameCapDesktop:   0.38,
		FlameCapMobile:    0.35,
		MinFlameHeight:    300,
		SeedMin:           200,
		SeedSpread:        55,
		DecayStep:         6,
		UpdateInterval:    32 * time.Millisecond,
		Palette:           "ember",
		Ash: AshParams{
			CountDesktop:  80,
			CountMobile:   45,
			RadiusMin:     0.6,
			RadiusSpan:    1.8,
			SpeedMin:      0.15,
			SpeedSpan:     0.25,
			DriftSpan:     0.25,
			OpacityMin:    0.2,
			OpacitySpan:   0.35,
			OpacityFloor:  0.15,
			OpacityCeil:   0.5,
			OpacityJitter: 0.02,
			Margin:        10,
			Color:         color.NRGBA{R: 210, G: 220, B: 210, A: 255},
		},
		Fade: FadeParams{
			MaxHeight: 300,
			Ratio:     0.65,
			Stops:     defaultFadeStops(),
		},
	}
}

func defaultFadeStops() []render.GradientStop {
	stops := []struct{ offset, alpha float64 }{
		{0, 0.95}, {0.08, 0.85}, {0.15, 0.7}, {0.25, 0.5}, {0.35, 0.35},
		{0.5, 0.2}, {0.65, 0.1}, {0.8, 0.03}, {1, 0},
	}
	out := make([]render.GradientStop, len(stops))
	for i, s := range stops {
		out[i] = render.GradientStop{
			Offset: s.offset,
			Color:  color.NRGBA{A: uint8(s.alpha*255 + 0.5)},
		}
	}
	return out
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values leave the defaults in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt := func(key string, dst *int, min int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}
	setFloat := func(key string, dst *float64, positive bool) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && (!positive || parsed > 0) {
				*dst = parsed
			}
		}
	}

	setInt("mobile_breakpoint", &c.MobileBreakpoint, 0)
	setInt("scale_desktop", &c.ScaleDesktop, 1)
	setInt("scale_mobile", &c.ScaleMobile, 1)
	setInt("min_grid_width", &c.MinGridWidth, 1)
	setInt("min_grid_height", &c.MinGridHeight, 1)
	setFloat("grid_height_divisor", &c.GridHeightDivisor, true)
	setFloat("flame_cap_desktop", &c.FlameCapDesktop, true)
	setFloat("flame_cap_mobile", &c.FlameCapMobile, true)
	setInt("min_flame_height", &c.MinFlameHeight, 0)
	setInt("decay_step", &c.DecayStep, 0)
	setInt("ash_count_desktop", &c.Ash.CountDesktop, 0)
	setInt("ash_count_mobile", &c.Ash.CountMobile, 0)
	setFloat("fade_max_height", &c.Fade.MaxHeight, true)
	setFloat("fade_ratio", &c.Fade.Ratio, true)
	setFloat("hue", &c.Hue, false)

	if v, ok := cfg["seed_min"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.SeedMin = uint8(parsed)
		}
	}
	if v, ok := cfg["seed_spread"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 8); err == nil {
			c.SeedSpread = uint8(parsed)
		}
	}
	if int(c.SeedMin)+int(c.SeedSpread) > 255 {
		c.SeedSpread = 255 - c.SeedMin
	}
	if v, ok := cfg["update_interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.UpdateInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["palette"]; ok {
		if _, known := palettes.Lookup(v); known {
			c.Palette = v
		}
	}
	return c
}
