package gamemap

import (
	"image"
	"image/color"
	"path/filepath"
	"sort"

	"github.com/bodgit/gamemap/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

// Reference is a labelled reference color.
type Reference struct {
	Label string
	Color palette.Color
}

// ColorCount is one of the dominant colors of an image.
type ColorCount struct {
	Color palette.Color
	Count int
	// Nearest is the closest reference color, if the image is registered
	Nearest *Reference
}

// DominantColors finds up to n representative colors of the image in file
// and how many pixels are closest to each, most frequent first. If the image
// is registered it is checked and transformed as for classification and each
// color is paired with its nearest reference color.
func (r *Reader) DominantColors(file string, n int) ([]ColorCount, error) {
	if n < 1 || n > palette.MaxColors {
		n = palette.MaxColors
	}

	m, _, err := decodeFile(file)
	if err != nil {
		return nil, err
	}

	cfg, ok := r.registry.Lookup(filepath.Base(file))
	if ok {
		if size := m.Bounds().Size(); size != cfg.Size {
			return nil, &DimensionMismatchError{Got: size, Want: cfg.Size}
		}
		if cfg.Transform != nil {
			m = transform(m, cfg.Transform)
		}
	}

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), m)
	r.logger.Printf("Found %d dominant colors in \"%s\"\n", len(p), file)

	counts := countIndices(palette.Quantize(m, p))

	colors := make([]ColorCount, 0, len(p))
	for i, c := range p {
		colors = append(colors, ColorCount{
			Color: palette.FromColor(c),
			Count: counts[i],
		})
	}

	if ok {
		legend := cfg.Legend()
		lp := make(color.Palette, len(legend))
		for i, ref := range legend {
			lp[i] = ref.Color
		}
		for i := range colors {
			if len(lp) > 0 {
				colors[i].Nearest = &legend[lp.Index(colors[i].Color)]
			}
		}
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Count > colors[j].Count
	})

	return colors, nil
}

func countIndices(pm *image.Paletted) map[int]int {
	counts := make(map[int]int)
	for _, i := range pm.Pix {
		counts[int(i)]++
	}
	return counts
}
