//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"firefield/internal/fire"
)

type flameProvider interface {
	Layout() fire.Layout
	FadeHeight() float64
	Field() *fire.Field
}

// Overlay draws optional debugging visuals on top of the flame.
type Overlay struct {
	src        flameProvider
	showBounds bool
	showHeat   bool

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src flameProvider) *Overlay {
	return &Overlay{src: src}
}

// Update toggles overlays: 1 flame bounds, 2 raw heat mask.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.src == nil {
		return
	}
	l := o.src.Layout()
	if o.showHeat {
		o.drawHeat(screen)
	}
	if o.showBounds {
		w := float32(l.Viewport.W)
		top := float32(l.FlameTop())
		vector.StrokeRect(screen, 1, top, w-2, float32(l.FlameHeight())-1, 1, color.RGBA{R: 80, G: 200, B: 255, A: 200}, false)
		vector.StrokeRect(screen, 1, top, w-2, float32(o.src.FadeHeight()), 1, color.RGBA{R: 255, G: 80, B: 200, A: 200}, false)
	}
}

// drawHeat shows the unscaled intensity grid in the top-left corner as a
// greyscale mask.
func (o *Overlay) drawHeat(screen *ebiten.Image) {
	g := o.src.Field().Grid()
	total := g.W * g.H
	if total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != g.W || o.maskImg.Bounds().Dy() != g.H {
		o.maskImg = ebiten.NewImage(g.W, g.H)
		o.maskBuf = make([]byte, 4*total)
	}
	for i, v := range g.Cells() {
		base := i * 4
		o.maskBuf[base+0] = v
		o.maskBuf[base+1] = v
		o.maskBuf[base+2] = v
		o.maskBuf[base+3] = 255
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(o.maskImg, op)
}
