package fire

import (
	"strconv"
	"time"

	"firefield/internal/core"
)

func (r *Renderer) Parameters() core.ParameterSnapshot {
	l := r.layout
	cfg := r.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Layout",
			Params: []core.Parameter{
				intParam("viewport_w", "Viewport width", l.Viewport.W),
				intParam("viewport_h", "Viewport height", l.Viewport.H),
				intParam("scale", "Downscale factor", l.Scale),
				intParam("grid_w", "Grid width", l.Grid.W),
				intParam("grid_h", "Grid height", l.Grid.H),
				intParam("max_flame_height", "Max flame height", l.MaxFlameHeight),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				stringParam("palette", "Palette", cfg.Palette),
				floatParam("hue", "Hue shift", cfg.Hue),
				intParam("seed_min", "Seed min", int(cfg.SeedMin)),
				intParam("seed_spread", "Seed spread", int(cfg.SeedSpread)),
				intParam("decay_step", "Decay step", cfg.DecayStep),
				intParam("update_interval_ms", "Update interval (ms)", int(cfg.UpdateInterval/time.Millisecond)),
				floatParam("fade_ratio", "Fade ratio", cfg.Fade.Ratio),
			},
		},
		{
			Name: "Runtime",
			Params: []core.Parameter{
				intParam("ash", "Ash particles", len(r.ash)),
				intParam("ticks", "Ticks", int(r.stats.Ticks)),
				intParam("frames", "Frames", int(r.stats.Frames)),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust at runtime.
func (r *Renderer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "decay_step", Label: "Decay", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 40, HasMin: true, HasMax: true},
		{Key: "seed_min", Label: "Seed min", Type: core.ParamTypeInt, Step: 5, Min: 0, Max: 255, HasMin: true, HasMax: true},
		{Key: "update_interval_ms", Label: "Interval ms", Type: core.ParamTypeInt, Step: 4, Min: 0, Max: 250, HasMin: true, HasMax: true},
		{Key: "fade_ratio", Label: "Fade ratio", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer control. It reports false for unknown
// keys or out-of-range values.
func (r *Renderer) SetIntParameter(key string, value int) bool {
	switch key {
	case "decay_step":
		if value < 0 {
			return false
		}
		r.cfg.DecayStep = value
	case "seed_min":
		if value < 0 || value > 255 {
			return false
		}
		r.cfg.SeedMin = uint8(value)
		if int(r.cfg.SeedMin)+int(r.cfg.SeedSpread) > 255 {
			r.cfg.SeedSpread = 255 - r.cfg.SeedMin
		}
	case "update_interval_ms":
		if value < 0 {
			return false
		}
		r.cfg.UpdateInterval = time.Duration(value) * time.Millisecond
		r.throttle.SetInterval(r.cfg.UpdateInterval)
		return true
	default:
		return false
	}
	r.field.configure(r.cfg)
	return true
}

// SetFloatParameter applies a floating point control.
func (r *Renderer) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fade_ratio":
		if value < 0 || value > 1 {
			return false
		}
		r.cfg.Fade.Ratio = value
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
