package gamemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"Yz10cvV.jpeg"}, r.Names())

	cfg, ok := r.Lookup("Yz10cvV.jpeg")
	assert.True(t, ok)
	assert.Equal(t, "main_battle_tank_central_germany", cfg.Output)
	assert.Len(t, cfg.ColumnXs, cfg.Squares.X)
	assert.Len(t, cfg.RowYs, cfg.Squares.Y)
	assert.Empty(t, cfg.Fixes)

	// Every window is inside the image once rotated
	bounds := rotatedSize(cfg)
	for _, cell := range cfg.Cells() {
		w := cfg.Window(cell)
		assert.True(t, w.In(bounds), "%v", cell)
	}

	// No color is both terrain and elevation
	terrain := make(map[interface{}]struct{})
	for _, tc := range cfg.TerrainColors {
		terrain[tc.Color] = struct{}{}
	}
	for _, c := range cfg.ElevationColors {
		assert.NotContains(t, terrain, c)
	}

	_, ok = r.Lookup("yz10cvv.jpeg")
	assert.False(t, ok)
	_, ok = r.Lookup("maps/Yz10cvV.jpeg")
	assert.False(t, ok)
}

func TestRegistryCopies(t *testing.T) {
	configs := map[string]*MapConfig{"a.png": {Output: "a"}}
	r := NewRegistry(configs)
	delete(configs, "a.png")

	_, ok := r.Lookup("a.png")
	assert.True(t, ok)
}

func TestLegend(t *testing.T) {
	legend := supported(t).Legend()

	// 3 terrain, 4 elevation, 2 road and 2 water colors
	assert.Len(t, legend, 11)
	assert.Equal(t, Reference{"woods", woods}, legend[0])
	assert.Equal(t, Reference{"elevation 0", lowland}, legend[3])
	assert.Equal(t, "2nd class road", legend[7].Label)
	assert.Equal(t, "stream", legend[9].Label)
}
