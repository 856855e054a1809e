package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.NRGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	cells := []uint8{1, 0, 9}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, palette)
	want := []byte{5, 6, 7, 8, 1, 2, 3, 4, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}

	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d with empty palette", i, b)
		}
	}
}

func TestPremultiplyRGBA(t *testing.T) {
	src := []byte{255, 128, 0, 128, 200, 200, 200, 0, 10, 20, 30, 255}
	dst := make([]byte, len(src))
	PremultiplyRGBA(dst, src)
	want := []byte{128, 64, 0, 128, 0, 0, 0, 0, 10, 20, 30, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}
