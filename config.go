package gamemap

import (
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/gamemap/palette"
	"github.com/disintegration/gift"
)

// Cell identifies a grid square by its 1-based column and row.
type Cell struct {
	Column, Row int
}

// TerrainColor associates a reference color with a terrain label.
type TerrainColor struct {
	Name  string
	Color palette.Color
}

// Edge describes a linear feature drawn along square edges such as roads and
// rivers. Edges are not currently detected.
type Edge struct {
	Name     string
	Colors   []palette.Color
	MinWidth int
	MaxWidth int
}

// Fix forces the classification of a single square.
type Fix struct {
	Terrain   string
	Elevation int
}

// MapConfig describes one supported map image.
type MapConfig struct {
	Game   string
	Output string

	// Size is the width and height of the image as scanned
	Size image.Point
	// Transform is applied before anything else, nil leaves the image as is
	Transform gift.Filter

	// Pixel origins of each column and row, after Transform
	ColumnXs []int
	RowYs    []int
	// Squares is the number of columns and rows
	Squares image.Point
	// SquareSize is the side of the inspected window, inclusive of both
	// ends so SquareSize+1 pixels are inspected along each axis
	SquareSize int

	TerrainColors []TerrainColor
	// ElevationColors are ordered from lowest to highest
	ElevationColors []palette.Color
	Edges           []Edge

	Overrides []Override
	Fixes     map[Cell]Fix
}

// Window returns the pixel window inspected for cell c.
func (cfg *MapConfig) Window(c Cell) image.Rectangle {
	x1 := cfg.ColumnXs[c.Column-1]
	y1 := cfg.RowYs[c.Row-1]
	return image.Rect(x1, y1, x1+cfg.SquareSize+1, y1+cfg.SquareSize+1)
}

// Cells returns every cell in row-major order.
func (cfg *MapConfig) Cells() []Cell {
	cells := make([]Cell, 0, cfg.Squares.X*cfg.Squares.Y)
	for row := 1; row <= cfg.Squares.Y; row++ {
		for column := 1; column <= cfg.Squares.X; column++ {
			cells = append(cells, Cell{column, row})
		}
	}
	return cells
}

// Palette returns the terrain colors followed by the elevation colors, padded
// to palette.MaxColors.
func (cfg *MapConfig) Palette() (color.Palette, error) {
	terrain := make([]palette.Color, len(cfg.TerrainColors))
	for i, t := range cfg.TerrainColors {
		terrain[i] = t.Color
	}
	return palette.New(terrain, cfg.ElevationColors)
}

// Legend returns every reference color with a label: terrain colors, then
// elevation colors, then edge colors. Each color appears once.
func (cfg *MapConfig) Legend() []Reference {
	var legend []Reference
	seen := make(map[palette.Color]struct{})
	add := func(label string, c palette.Color) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		legend = append(legend, Reference{label, c})
	}
	for _, t := range cfg.TerrainColors {
		add(t.Name, t.Color)
	}
	for i, c := range cfg.ElevationColors {
		add(fmt.Sprintf("elevation %d", i), c)
	}
	for _, e := range cfg.Edges {
		for _, c := range e.Colors {
			add(e.Name, c)
		}
	}
	return legend
}
