package render

import "image/color"

// FillPaletteRGBA converts cell values into straight-alpha RGBA pixels using a
// palette. When the palette is empty the buffer is cleared to transparent
// black. Values past the end of the palette use its last entry.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.NRGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PremultiplyRGBA copies straight-alpha RGBA bytes from src into dst with the
// colour channels scaled by alpha.
func PremultiplyRGBA(dst, src []byte) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i+3 < n; i += 4 {
		a := uint32(src[i+3])
		dst[i+0] = uint8((uint32(src[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
}
