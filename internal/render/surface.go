// Package render defines the drawing surface the fire renderer composites
// onto, with a pure-Go implementation and an ebiten-backed one.
package render

import "image/color"

// CompositeMode selects how drawn pixels combine with the destination.
type CompositeMode int

const (
	// SourceOver paints source pixels over the destination.
	SourceOver CompositeMode = iota
	// DestinationOut erases the destination in proportion to source alpha.
	DestinationOut
)

func (m CompositeMode) String() string {
	switch m {
	case DestinationOut:
		return "destination-out"
	default:
		return "source-over"
	}
}

// Buffer is an off-screen pixel image owned by a Surface.
type Buffer interface {
	Size() (w, h int)
	// WritePixels replaces the buffer contents with RGBA bytes in straight
	// alpha, row-major, len == 4*w*h. Mismatched lengths are ignored.
	WritePixels(pix []byte)
}

// Surface is a drawable 2D target supplied by the host.
type Surface interface {
	Size() (w, h int)
	Clear()
	NewBuffer(w, h int) Buffer
	// DrawScaled draws buf stretched to the rectangle (x, y, w, h) with
	// smoothing.
	DrawScaled(buf Buffer, x, y, w, h float64)
	// FillGradient fills the rectangle with a vertical gradient running from
	// the rectangle's top (offset 0) to its bottom (offset 1).
	FillGradient(x, y, w, h float64, g Gradient)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	CompositeMode() CompositeMode
	SetCompositeMode(m CompositeMode)
}
