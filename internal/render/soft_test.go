package render

import (
	"image/color"
	"testing"
)

func fillOpaque(s *SoftSurface, c color.RGBA) {
	b := s.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.Image().SetRGBA(x, y, c)
		}
	}
}

func TestSoftSurfaceDestinationOutGradient(t *testing.T) {
	s := NewSoftSurface(4, 10)
	fillOpaque(s, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	s.SetCompositeMode(DestinationOut)
	s.FillGradient(0, 0, 4, 10, Gradient{Stops: []GradientStop{
		{Offset: 0, Color: color.NRGBA{A: 255}},
		{Offset: 1, Color: color.NRGBA{A: 0}},
	}})

	top := s.Image().RGBAAt(0, 0)
	bottom := s.Image().RGBAAt(0, 9)
	if top.A > 20 {
		t.Fatalf("top alpha = %d, want nearly erased", top.A)
	}
	if bottom.A < 235 {
		t.Fatalf("bottom alpha = %d, want nearly intact", bottom.A)
	}
	if top.R > top.A || top.G > top.A {
		t.Fatalf("erased pixel %+v not premultiplied", top)
	}
	for y := 1; y < 10; y++ {
		if s.Image().RGBAAt(2, y).A < s.Image().RGBAAt(2, y-1).A {
			t.Fatalf("alpha decreased going down at row %d", y)
		}
	}
}

func TestSoftSurfaceDestinationOutExtremes(t *testing.T) {
	s := NewSoftSurface(2, 2)
	fillOpaque(s, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	s.SetCompositeMode(DestinationOut)
	s.FillGradient(0, 0, 2, 1, Gradient{Stops: []GradientStop{{Offset: 0, Color: color.NRGBA{A: 255}}}})
	s.FillGradient(0, 1, 2, 1, Gradient{Stops: []GradientStop{{Offset: 0, Color: color.NRGBA{A: 0}}}})
	if c := s.Image().RGBAAt(1, 0); c != (color.RGBA{}) {
		t.Fatalf("full erase left %+v", c)
	}
	if c := s.Image().RGBAAt(1, 1); c != (color.RGBA{R: 90, G: 90, B: 90, A: 255}) {
		t.Fatalf("zero erase changed pixel to %+v", c)
	}
}

func TestSoftSurfaceDrawScaled(t *testing.T) {
	s := NewSoftSurface(20, 20)
	buf := s.NewBuffer(2, 2)
	if w, h := buf.Size(); w != 2 || h != 2 {
		t.Fatalf("buffer size = %dx%d", w, h)
	}
	pix := make([]byte, 16)
	for i := 0; i < 16; i += 4 {
		pix[i], pix[i+3] = 255, 255
	}
	buf.WritePixels(pix)
	buf.WritePixels(pix[:4])

	s.DrawScaled(buf, 5, 10, 10, 10)
	if c := s.Image().RGBAAt(10, 15); c.R != 255 || c.A != 255 {
		t.Fatalf("scaled pixel = %+v, want opaque red", c)
	}
	if c := s.Image().RGBAAt(2, 2); c.A != 0 {
		t.Fatalf("pixel outside target = %+v", c)
	}

	// Partly off-surface targets are clipped.
	s.DrawScaled(buf, -5, 15, 10, 10)
	if c := s.Image().RGBAAt(0, 19); c.A != 255 {
		t.Fatalf("clipped draw missing at bottom-left: %+v", c)
	}

	s.Clear()
	if c := s.Image().RGBAAt(10, 15); c.A != 0 {
		t.Fatal("Clear left pixels")
	}
}

func TestSoftSurfaceFillCircle(t *testing.T) {
	s := NewSoftSurface(20, 20)
	s.FillCircle(10, 10, 4, color.NRGBA{R: 210, G: 220, B: 210, A: 128})
	center := s.Image().RGBAAt(10, 10)
	if center.A < 120 || center.A > 130 {
		t.Fatalf("center alpha = %d, want about 128", center.A)
	}
	if c := s.Image().RGBAAt(1, 1); c.A != 0 {
		t.Fatalf("corner painted: %+v", c)
	}

	// Circles straddling or beyond the edge must not panic.
	s.FillCircle(-1, -1, 3, color.NRGBA{A: 255})
	s.FillCircle(100, 100, 3, color.NRGBA{A: 255})
	s.FillCircle(10, 10, 0, color.NRGBA{A: 255})

	s.SetCompositeMode(DestinationOut)
	s.FillCircle(10, 10, 4, color.NRGBA{A: 255})
	if c := s.Image().RGBAAt(10, 10); c.A != 0 {
		t.Fatalf("erasing circle left alpha %d", c.A)
	}
	if s.CompositeMode().String() != "destination-out" {
		t.Fatalf("mode = %v", s.CompositeMode())
	}
}
