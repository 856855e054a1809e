//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface adapts the per-frame ebiten screen to the Surface contract.
// Bind must be called with the current screen before drawing.
type EbitenSurface struct {
	screen *ebiten.Image
	mode   CompositeMode

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

// NewEbitenSurface constructs an unbound surface.
func NewEbitenSurface() *EbitenSurface {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenSurface{
		whiteImage:    white,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Bind points the surface at the screen for the current frame.
func (s *EbitenSurface) Bind(screen *ebiten.Image) { s.screen = screen }

func (s *EbitenSurface) Size() (int, int) {
	if s.screen == nil {
		return 0, 0
	}
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *EbitenSurface) Clear() {
	if s.screen != nil {
		s.screen.Clear()
	}
}

func (s *EbitenSurface) CompositeMode() CompositeMode { return s.mode }

func (s *EbitenSurface) SetCompositeMode(m CompositeMode) { s.mode = m }

func (s *EbitenSurface) blend() ebiten.Blend {
	if s.mode == DestinationOut {
		return ebiten.BlendDestinationOut
	}
	return ebiten.BlendSourceOver
}

func (s *EbitenSurface) NewBuffer(w, h int) Buffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &ebitenBuffer{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

func (s *EbitenSurface) DrawScaled(buf Buffer, x, y, w, h float64) {
	eb, ok := buf.(*ebitenBuffer)
	if !ok || s.screen == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(eb.w), h/float64(eb.h))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	op.Blend = s.blend()
	s.screen.DrawImage(eb.img, op)
}

// FillGradient draws one quad per stop segment with per-vertex colours so the
// GPU interpolates between stops.
func (s *EbitenSurface) FillGradient(x, y, w, h float64, g Gradient) {
	if s.screen == nil || w <= 0 || h <= 0 {
		return
	}
	stops := g.Normalized()
	if len(stops) < 2 {
		return
	}
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for i, st := range stops {
		py := float32(y + st.Offset*h)
		r := float32(st.Color.R) / 255
		gg := float32(st.Color.G) / 255
		b := float32(st.Color.B) / 255
		a := float32(st.Color.A) / 255
		for _, px := range [2]float32{float32(x), float32(x + w)} {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX: px, DstY: py,
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gg, ColorB: b, ColorA: a,
			})
		}
		if i == 0 {
			continue
		}
		base := uint16(2 * (i - 1))
		s.indices = append(s.indices, base, base+1, base+2, base+1, base+3, base+2)
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = s.blend()
	s.screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, op)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.screen == nil || r <= 0 {
		return
	}
	if s.mode == SourceOver {
		vector.FillCircle(s.screen, float32(cx), float32(cy), float32(r), c, true)
		return
	}
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	op := &vector.DrawPathOptions{AntiAlias: true, Blend: ebiten.BlendDestinationOut}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(s.screen, &path, &vector.FillOptions{}, op)
}

type ebitenBuffer struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func (b *ebitenBuffer) Size() (int, int) { return b.w, b.h }

// WritePixels uploads straight-alpha pixels; ebiten expects premultiplied.
func (b *ebitenBuffer) WritePixels(pix []byte) {
	if len(pix) != len(b.buf) {
		return
	}
	PremultiplyRGBA(b.buf, pix)
	b.img.WritePixels(b.buf)
}
