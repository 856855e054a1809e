package render

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// circleKappa places cubic control points so four segments approximate a
// circle.
const circleKappa = 0.5522847498

// SoftSurface is a CPU Surface backed by an *image.RGBA.
type SoftSurface struct {
	img     *image.RGBA
	mode    CompositeMode
	scratch *image.RGBA
	mask    *image.Alpha
	raster  *vector.Rasterizer
}

// NewSoftSurface allocates a transparent surface of the given size.
func NewSoftSurface(w, h int) *SoftSurface {
	s := &SoftSurface{raster: vector.NewRasterizer(1, 1)}
	s.Resize(w, h)
	return s
}

// Resize reallocates the surface, discarding its contents.
func (s *SoftSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the composited pixels.
func (s *SoftSurface) Image() *image.RGBA { return s.img }

func (s *SoftSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *SoftSurface) Clear() {
	for i := range s.img.Pix {
		s.img.Pix[i] = 0
	}
}

func (s *SoftSurface) CompositeMode() CompositeMode { return s.mode }

func (s *SoftSurface) SetCompositeMode(m CompositeMode) { s.mode = m }

func (s *SoftSurface) NewBuffer(w, h int) Buffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &SoftBuffer{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (s *SoftSurface) DrawScaled(buf Buffer, x, y, w, h float64) {
	sb, ok := buf.(*SoftBuffer)
	if !ok || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	if r.Empty() {
		return
	}
	if s.mode == SourceOver {
		draw.BiLinear.Scale(s.img, r, sb.img, sb.img.Bounds(), draw.Over, nil)
		return
	}
	// Scale into a scratch layer first, then use its alpha as the erase mask.
	if s.scratch == nil || !s.scratch.Bounds().Eq(s.img.Bounds()) {
		s.scratch = image.NewRGBA(s.img.Bounds())
	} else {
		for i := range s.scratch.Pix {
			s.scratch.Pix[i] = 0
		}
	}
	draw.BiLinear.Scale(s.scratch, r, sb.img, sb.img.Bounds(), draw.Src, nil)
	clip := r.Intersect(s.img.Bounds())
	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		for px := clip.Min.X; px < clip.Max.X; px++ {
			a := s.scratch.Pix[s.scratch.PixOffset(px, py)+3]
			s.erase(px, py, a)
		}
	}
}

func (s *SoftSurface) FillGradient(x, y, w, h float64, g Gradient) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		c := g.At((float64(py) + 0.5 - y) / h)
		row := image.Rect(r.Min.X, py, r.Max.X, py+1)
		if s.mode == DestinationOut {
			for px := row.Min.X; px < row.Max.X; px++ {
				s.erase(px, py, c.A)
			}
			continue
		}
		stddraw.Draw(s.img, row, image.NewUniform(c), image.Point{}, stddraw.Over)
	}
}

func (s *SoftSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	ox := int(math.Floor(cx - r))
	oy := int(math.Floor(cy - r))
	size := int(math.Ceil(2*r)) + 2
	box := image.Rect(ox, oy, ox+size, oy+size)
	if !box.Overlaps(s.img.Bounds()) {
		return
	}

	// Rasterise in box-local coordinates so every path point stays in bounds.
	lx, ly := float32(cx-float64(ox)), float32(cy-float64(oy))
	rr, k := float32(r), float32(r*circleKappa)
	z := s.raster
	z.Reset(size, size)
	z.MoveTo(lx+rr, ly)
	z.CubeTo(lx+rr, ly+k, lx+k, ly+rr, lx, ly+rr)
	z.CubeTo(lx-k, ly+rr, lx-rr, ly+k, lx-rr, ly)
	z.CubeTo(lx-rr, ly-k, lx-k, ly-rr, lx, ly-rr)
	z.CubeTo(lx+k, ly-rr, lx+rr, ly-k, lx+rr, ly)
	z.ClosePath()

	if s.mask == nil || s.mask.Bounds().Dx() != size {
		s.mask = image.NewAlpha(image.Rect(0, 0, size, size))
	}
	z.DrawOp = stddraw.Src
	z.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})

	if s.mode == DestinationOut {
		clip := box.Intersect(s.img.Bounds())
		for py := clip.Min.Y; py < clip.Max.Y; py++ {
			for px := clip.Min.X; px < clip.Max.X; px++ {
				cov := uint32(s.mask.AlphaAt(px-ox, py-oy).A)
				s.erase(px, py, uint8(cov*uint32(c.A)/255))
			}
		}
		return
	}
	stddraw.DrawMask(s.img, box, image.NewUniform(c), image.Point{}, s.mask, image.Point{}, stddraw.Over)
}

// erase scales the premultiplied pixel at (x, y) by 1 - a/255.
func (s *SoftSurface) erase(x, y int, a uint8) {
	if a == 0 {
		return
	}
	i := s.img.PixOffset(x, y)
	keep := 255 - uint32(a)
	for c := 0; c < 4; c++ {
		s.img.Pix[i+c] = uint8((uint32(s.img.Pix[i+c])*keep + 127) / 255)
	}
}

// SoftBuffer is the off-screen image type created by SoftSurface.
type SoftBuffer struct {
	img *image.NRGBA
}

func (b *SoftBuffer) Size() (int, int) {
	r := b.img.Bounds()
	return r.Dx(), r.Dy()
}

func (b *SoftBuffer) WritePixels(pix []byte) {
	if len(pix) != len(b.img.Pix) {
		return
	}
	copy(b.img.Pix, pix)
}

// Image exposes the buffer pixels.
func (b *SoftBuffer) Image() *image.NRGBA { return b.img }
