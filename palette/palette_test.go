package palette

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	woods = Color{122, 176, 129}
	urban = Color{251, 253, 1}
	white = Color{255, 255, 247}
)

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{0x12, 0x34, 0xff}.RGBA()
	assert.Equal(t, uint32(0x1212), r)
	assert.Equal(t, uint32(0x3434), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestFromColor(t *testing.T) {
	tables := map[string]struct {
		in   color.Color
		want Color
	}{
		"color": {woods, woods},
		"rgba":  {color.RGBA{1, 2, 3, 255}, Color{1, 2, 3}},
		"nrgba": {color.NRGBA{4, 5, 6, 255}, Color{4, 5, 6}},
		"gray":  {color.Gray{7}, Color{7, 7, 7}},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, table.want, FromColor(table.in))
		})
	}
}

func TestNew(t *testing.T) {
	p, err := New([]Color{woods, urban}, []Color{white})
	require.Nil(t, err)
	assert.Len(t, p, MaxColors)
	assert.Equal(t, woods, p[0])
	assert.Equal(t, urban, p[1])
	assert.Equal(t, white, p[2])
	for _, c := range p[3:] {
		assert.Equal(t, Black, c)
	}
}

func TestNewTooMany(t *testing.T) {
	_, err := New(make([]Color, MaxColors), []Color{woods})
	assert.Equal(t, errTooMany, err)
}

func TestTally(t *testing.T) {
	tally := NewTally()

	_, _, ok := tally.MostCommon()
	assert.False(t, ok)

	for _, c := range []Color{urban, woods, woods, urban, white} {
		tally.Add(c)
	}

	assert.Equal(t, 3, tally.Len())
	assert.Equal(t, 2, tally.Count(woods))
	assert.Equal(t, 0, tally.Count(Black))
	assert.Equal(t, []Color{urban, woods, white}, tally.Colors())

	// urban and woods are tied so the first added wins
	c, n, ok := tally.MostCommon()
	assert.True(t, ok)
	assert.Equal(t, urban, c)
	assert.Equal(t, 2, n)

	tally.Add(woods)
	c, n, _ = tally.MostCommon()
	assert.Equal(t, woods, c)
	assert.Equal(t, 3, n)
}

func TestQuantize(t *testing.T) {
	p, err := New([]Color{woods, urban}, []Color{white})
	require.Nil(t, err)

	m := image.NewRGBA(image.Rect(10, 20, 14, 21))
	m.Set(10, 20, color.RGBA{120, 178, 130, 255})
	m.Set(11, 20, color.RGBA{251, 253, 1, 255})
	m.Set(12, 20, color.RGBA{250, 250, 250, 255})
	m.Set(13, 20, color.RGBA{10, 5, 0, 255})

	pm := Quantize(m, p)
	assert.Equal(t, image.Rect(0, 0, 4, 1), pm.Bounds())
	assert.Equal(t, []uint8{0, 1, 2, 3}, pm.Pix)

	rgba := Expand(pm)
	assert.Equal(t, woods, FromColor(rgba.At(0, 0)))
	assert.Equal(t, urban, FromColor(rgba.At(1, 0)))
	assert.Equal(t, white, FromColor(rgba.At(2, 0)))
	assert.Equal(t, Black, FromColor(rgba.At(3, 0)))
}

func TestQuantizeNoDither(t *testing.T) {
	p, err := New([]Color{woods, urban})
	require.Nil(t, err)

	// A flat off-palette color must map to the same entry everywhere
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(m.Pix); i += 4 {
		copy(m.Pix[i:], []uint8{160, 190, 90, 255})
	}

	pm := Quantize(m, p)
	for _, i := range pm.Pix {
		assert.Equal(t, pm.Pix[0], i)
	}
}
