package palette

import (
	"image"
	"image/color"
	"image/draw"
)

// Quantize maps every pixel of m to the nearest color in p without any
// dithering. The result has its origin at (0, 0).
func Quantize(m image.Image, p color.Palette) *image.Paletted {
	b := m.Bounds()
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)

	// Scanned maps usually repeat a small number of colors many times over
	cache := make(map[color.RGBA64]uint8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBA64Model.Convert(m.At(x, y)).(color.RGBA64)
			i, ok := cache[c]
			if !ok {
				i = uint8(p.Index(c))
				cache[c] = i
			}
			pm.SetColorIndex(x-b.Min.X, y-b.Min.Y, i)
		}
	}
	return pm
}

// Expand converts a paletted image back to direct color.
func Expand(pm *image.Paletted) *image.RGBA {
	b := pm.Bounds()
	m := image.NewRGBA(b)
	draw.Draw(m, b, pm, b.Min, draw.Src)
	return m
}
