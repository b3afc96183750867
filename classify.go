package gamemap

import (
	"image"

	"github.com/bodgit/gamemap/palette"
)

const (
	// TerrainThreshold is the number of pixels a terrain color must exceed
	// to be trusted
	TerrainThreshold = 100
	// ElevationThreshold is the number of pixels an elevation color must
	// exceed to be trusted
	ElevationThreshold = 25

	// Open is the terrain of any square without a trusted terrain color
	Open = "open"
	// UnknownElevation is the elevation of any square without a trusted
	// elevation color
	UnknownElevation = -1
)

// Square is the classification of a single grid square.
type Square struct {
	Cell
	Terrain   string
	Elevation int
}

type classifier struct {
	cfg       *MapConfig
	terrain   map[palette.Color]string
	elevation map[palette.Color]int
}

func newClassifier(cfg *MapConfig) *classifier {
	c := &classifier{
		cfg:       cfg,
		terrain:   make(map[palette.Color]string, len(cfg.TerrainColors)),
		elevation: make(map[palette.Color]int, len(cfg.ElevationColors)),
	}
	for _, t := range cfg.TerrainColors {
		c.terrain[t.Color] = t.Name
	}
	for i, e := range cfg.ElevationColors {
		c.elevation[e] = i
	}
	return c
}

func colorAt(m image.Image, x, y int) palette.Color {
	if rgba, ok := m.(*image.RGBA); ok {
		c := rgba.RGBAAt(x, y)
		return palette.Color{R: c.R, G: c.G, B: c.B}
	}
	return palette.FromColor(m.At(x, y))
}

func (c *classifier) square(m image.Image, cell Cell) Square {
	terrain := palette.NewTally()
	elevation := palette.NewTally()

	r := c.cfg.Window(cell)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := colorAt(m, x, y)
			if _, ok := c.terrain[p]; ok {
				terrain.Add(p)
			} else if _, ok := c.elevation[p]; ok {
				elevation.Add(p)
			}
		}
	}

	s := Square{
		Cell:      cell,
		Terrain:   Open,
		Elevation: UnknownElevation,
	}

	if p, n, ok := terrain.MostCommon(); ok && n > TerrainThreshold {
		s.Terrain = c.terrain[p]
	}

	if p, n, ok := elevation.MostCommon(); ok && n > ElevationThreshold {
		s.Elevation = c.elevation[p]
	}

	for _, o := range c.cfg.Overrides {
		s = o.Apply(s)
	}

	return applyFixes(c.cfg.Fixes, s)
}

// Classify classifies every square of the normalized image m in row-major
// order.
func Classify(m image.Image, cfg *MapConfig) []Square {
	c := newClassifier(cfg)
	cells := cfg.Cells()
	squares := make([]Square, len(cells))
	for i, cell := range cells {
		squares[i] = c.square(m, cell)
	}
	return squares
}
