/*
Package preview renders a map image with the inspected square windows
outlined so that the grid configuration can be checked by eye.
*/
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// Box is a rectangle to outline in Color.
type Box struct {
	Rect  image.Rectangle
	Color color.Color
}

// Render returns a copy of m with each box outlined. If width is non-zero
// the result is scaled to that width, preserving the aspect ratio.
func Render(m image.Image, boxes []Box, width uint) image.Image {
	b := m.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, m, b.Min, draw.Src)

	for _, box := range boxes {
		outline(dst, box.Rect.Intersect(b), box.Color)
	}

	if width == 0 || int(width) == b.Dx() {
		return dst
	}

	return resize.Resize(width, 0, dst, resize.NearestNeighbor)
}

func outline(m *image.RGBA, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		m.Set(x, r.Min.Y, c)
		m.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		m.Set(r.Min.X, y, c)
		m.Set(r.Max.X-1, y, c)
	}
}

// Encode renders the preview and writes it to w as a PNG.
func Encode(w io.Writer, m image.Image, boxes []Box, width uint) error {
	return png.Encode(w, Render(m, boxes, width))
}
