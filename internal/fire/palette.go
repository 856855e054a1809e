package fire

import (
	"image/color"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/lucasb-eyer/go-colorful"

	"firefield/internal/core"
)

// PaletteSize is the number of intensity levels.
const PaletteSize = 256

// maxPaletteAlpha caps the alpha ramp so the hottest cells stay translucent.
const maxPaletteAlpha = 210

// Palette maps an intensity to a straight-alpha colour.
type Palette [PaletteSize]color.NRGBA

// PaletteFunc builds a palette.
type PaletteFunc func() Palette

var palettes core.Registry[PaletteFunc]

func init() {
	emberRamp = make([]emberStop, len(emberHexStops))
	for i, s := range emberHexStops {
		c, err := colorful.Hex(s.hex)
		if err != nil {
			panic("fire: ember stop " + s.hex + ": " + err.Error())
		}
		emberRamp[i] = emberStop{at: s.at, c: c}
	}
	RegisterPalette("ember", buildEmberPalette)
	RegisterPalette("necro", buildNecroPalette)
}

// RegisterPalette adds a palette builder under the provided name.
func RegisterPalette(name string, fn PaletteFunc) {
	if fn == nil {
		return
	}
	palettes.Register(name, fn)
}

// PaletteNames lists the registered palettes.
func PaletteNames() []string { return palettes.Names() }

// BuildPalette returns the named palette rotated by hue degrees. Unknown names
// fall back to ember.
func BuildPalette(name string, hue float64) Palette {
	fn, ok := palettes.Lookup(name)
	if !ok {
		fn = buildEmberPalette
	}
	p := fn()
	if hue != 0 {
		p = shiftHue(p, hue)
	}
	return p
}

func paletteAlpha(i int) uint8 {
	return uint8(min(maxPaletteAlpha, i+20))
}

var emberHexStops = []struct {
	at  float64
	hex string
}{
	{0, "#000000"},
	{0.25, "#8f1c07"},
	{0.5, "#e0520a"},
	{0.75, "#f5c431"},
	{1, "#ffffff"},
}

// buildEmberPalette ramps black, red, orange, yellow, white.
func buildEmberPalette() Palette {
	var p Palette
	for i := range p {
		t := float64(i) / float64(PaletteSize-1)
		c := emberColorAt(t)
		r, g, b := c.Clamped().RGB255()
		p[i] = color.NRGBA{R: r, G: g, B: b, A: paletteAlpha(i)}
	}
	return p
}

type emberStop struct {
	at float64
	c  colorful.Color
}

// emberRamp holds emberHexStops parsed once at init.
var emberRamp []emberStop

func emberColorAt(t float64) colorful.Color {
	for i := 1; i < len(emberRamp); i++ {
		hi := emberRamp[i]
		if t > hi.at {
			continue
		}
		lo := emberRamp[i-1]
		return lo.c.BlendRgb(hi.c, (t-lo.at)/(hi.at-lo.at))
	}
	return emberRamp[len(emberRamp)-1].c
}

// buildNecroPalette is the green-tinged ramp used by the guild site.
func buildNecroPalette() Palette {
	var p Palette
	for i := range p {
		var r, g, b int
		switch {
		case i < 90:
			g = int(float64(i) * 2.6)
			r = int(float64(i) * 0.6)
		case i < 180:
			g = 200 + int(float64(i-90)*0.6)
			r = 60 + int(float64(i-90)*0.7)
			b = int(float64(i-90) * 0.2)
		default:
			g = 255
			r = 140 + int(float64(i-180)*0.9)
			b = 40 + int(float64(i-180)*0.5)
		}
		p[i] = color.NRGBA{
			R: uint8(min(255, r)),
			G: uint8(min(255, g)),
			B: uint8(min(160, b)),
			A: paletteAlpha(i),
		}
	}
	return p
}

// shiftHue rotates every entry around the HSL hue circle, leaving lightness,
// saturation and alpha untouched.
func shiftHue(p Palette, degrees float64) Palette {
	out := p
	for i, c := range p {
		h, s, l := colorconv.RGBToHSL(c.R, c.G, c.B)
		h = math.Mod(h+degrees, 360)
		if h < 0 {
			h += 360
		}
		r, g, b, err := colorconv.HSLToRGB(h, s, l)
		if err != nil {
			continue
		}
		out[i] = color.NRGBA{R: r, G: g, B: b, A: c.A}
	}
	return out
}
