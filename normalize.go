package gamemap

import (
	"image"

	"github.com/bodgit/gamemap/palette"
	"github.com/disintegration/gift"
)

// Normalize checks m is the size expected by cfg, applies any orientation
// transform and quantizes every pixel to the nearest reference color. The
// result is in direct color with its origin at (0, 0).
func Normalize(m image.Image, cfg *MapConfig) (*image.RGBA, error) {
	if size := m.Bounds().Size(); size != cfg.Size {
		return nil, &DimensionMismatchError{Got: size, Want: cfg.Size}
	}

	if cfg.Transform != nil {
		m = transform(m, cfg.Transform)
	}

	p, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	return palette.Expand(palette.Quantize(m, p)), nil
}

func transform(m image.Image, f gift.Filter) image.Image {
	g := gift.New(f)
	dst := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}
