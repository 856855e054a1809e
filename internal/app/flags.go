package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"firefield/internal/fire"
)

// Overrides collects repeated key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q: want key=value", value)
	}
	o[key] = val
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width         int
	Height        int
	Palette       string
	Hue           float64
	Seed          int64
	TPS           int
	ReducedMotion bool
	HUD           bool
	Overrides     Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1024, Height: 768, Palette: "ember", TPS: 60, Overrides: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "initial viewport width in pixels")
	fs.IntVar(&c.Height, "h", c.Height, "initial viewport height in pixels")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette name ("+strings.Join(fire.PaletteNames(), ", ")+")")
	fs.Float64Var(&c.Hue, "hue", c.Hue, "palette hue rotation in degrees")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "disable the animated background")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at startup")
	fs.Var(c.Overrides, "set", "fire parameter override in key=value form (repeatable)")
}

// FireConfig merges the overrides and the palette flags into a fire.Config.
// Explicit -set palette/hue entries win over the dedicated flags.
func (c *Config) FireConfig() fire.Config {
	m := map[string]string{
		"palette": c.Palette,
		"hue":     strconv.FormatFloat(c.Hue, 'f', -1, 64),
	}
	for k, v := range c.Overrides {
		m[k] = v
	}
	return fire.FromMap(m)
}
