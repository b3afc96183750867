package gamemap

import (
	"image"
	"sort"

	"github.com/bodgit/gamemap/palette"
	"github.com/disintegration/gift"
)

// Registry maps the base filename of a supported image to its configuration.
// It is not modified after construction.
type Registry struct {
	configs map[string]*MapConfig
}

// NewRegistry returns a Registry holding a copy of configs.
func NewRegistry(configs map[string]*MapConfig) Registry {
	r := Registry{
		configs: make(map[string]*MapConfig, len(configs)),
	}
	for k, v := range configs {
		r.configs[k] = v
	}
	return r
}

// Lookup returns the configuration for the base filename name.
func (r Registry) Lookup(name string) (*MapConfig, bool) {
	cfg, ok := r.configs[name]
	return cfg, ok
}

// Names returns the supported filenames, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for k := range r.configs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var (
	roadColors  = []palette.Color{{R: 174, G: 105, B: 17}, {R: 127, G: 24, B: 8}}
	waterColors = []palette.Color{{R: 88, G: 159, B: 238}, {R: 68, G: 168, B: 237}}
)

// DefaultRegistry returns the registry of built-in map images.
func DefaultRegistry() Registry {
	return NewRegistry(map[string]*MapConfig{
		"Yz10cvV.jpeg": mainBattleTankCentralGermany(),
	})
}

func mainBattleTankCentralGermany() *MapConfig {
	return &MapConfig{
		Game:      "Main Battle Tank: Central Germany",
		Output:    "main_battle_tank_central_germany",
		Size:      image.Pt(1256, 1622),
		Transform: gift.Rotate270(),
		ColumnXs: []int{
			103, 139, 177, 212, 248, 283, 319, 356, 391, 426,
			467, 498, 533, 570, 607, 642, 679, 715, 751, 787,
			828, 861, 896, 932, 967, 1003, 1037, 1073, 1108, 1143,
			1184, 1215, 1251, 1287, 1324, 1360, 1395, 1431, 1467, 1502,
		},
		RowYs: []int{
			83, 121, 156, 192, 229, 265, 304, 338, 375, 411,
			452, 484, 521, 557, 593, 630, 665, 701, 739, 776,
			818, 848, 885, 921, 958, 994, 1029, 1066, 1101, 1138,
		},
		Squares:    image.Pt(40, 30),
		SquareSize: 24,
		TerrainColors: []TerrainColor{
			{"woods", palette.Color{R: 122, G: 176, B: 129}},
			{"orchard", palette.Color{R: 156, G: 199, B: 124}},
			{"urban", palette.Color{R: 251, G: 253, B: 1}},
		},
		ElevationColors: []palette.Color{
			{R: 255, G: 255, B: 247},
			{R: 230, G: 207, B: 114},
			{R: 211, G: 174, B: 81},
			{R: 194, G: 149, B: 46},
		},
		Edges: []Edge{
			{"2nd class road", roadColors, 3, 5},
			{"1st class road", roadColors, 6, 11},
			{"stream", waterColors, 3, 5},
			{"river", waterColors, 6, 11},
		},
		Overrides: []Override{
			// Urban squares sit on known high ground regardless of the
			// underlying elevation shading
			&ElevationByColumn{
				Terrain: "urban",
				Cells:   map[Cell]int{{16, 13}: 2},
				Bands: []ColumnBand{
					{MaxColumn: 5, Elevation: 2},
					{MaxColumn: 28, Elevation: 1},
				},
				Otherwise: 0,
			},
		},
		Fixes: map[Cell]Fix{},
	}
}
