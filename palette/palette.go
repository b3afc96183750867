/*
Package palette implements the exact-value reference colors used to classify
map squares, fixed size palettes built from them and quantization of an image
to such a palette.

A reference color is matched by equality only. Any tolerance comes from
quantizing the image to the palette first so that every pixel is forced to the
nearest reference color.
*/
package palette

import (
	"fmt"
	"image/color"
)

// MaxColors is the size every palette is padded to, the limit of an 8-bit
// color index.
const MaxColors = 256

var errTooMany = fmt.Errorf("palette: more than %d colors", MaxColors)

// Color is an opaque RGB triple. It is comparable so it can be used directly
// as a map key and it implements the color.Color interface.
type Color struct {
	R, G, B uint8
}

// Black is used to pad palettes.
var Black = Color{}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// FromColor converts any color.Color to a Color, discarding alpha.
func FromColor(c color.Color) Color {
	switch v := c.(type) {
	case Color:
		return v
	case color.RGBA:
		return Color{v.R, v.G, v.B}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// New concatenates the groups of colors in order and pads the result with
// Black up to MaxColors entries.
func New(groups ...[]Color) (color.Palette, error) {
	p := make(color.Palette, 0, MaxColors)
	for _, g := range groups {
		for _, c := range g {
			p = append(p, c)
		}
	}
	if len(p) > MaxColors {
		return nil, errTooMany
	}
	return pad(p), nil
}

func pad(p color.Palette) color.Palette {
	for len(p) < MaxColors {
		p = append(p, Black)
	}
	return p
}
