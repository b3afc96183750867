package gamemap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDB(t *testing.T) {
	db, err := NewMapDB(filepath.Join(t.TempDir(), "gamemap.db"))
	require.Nil(t, err)
	defer db.Close()

	cfg := supported(t)

	squares, err := db.Squares(cfg.Output)
	require.Nil(t, err)
	assert.Empty(t, squares)

	sha, err := db.SHA1(cfg.Output)
	require.Nil(t, err)
	assert.Equal(t, "", sha)

	// Stored out of order, read back row-major
	first := []Square{
		{Cell{2, 1}, "woods", 1},
		{Cell{1, 2}, "urban", 2},
		{Cell{1, 1}, Open, -1},
	}
	require.Nil(t, db.Store(cfg, "ABC", first))

	squares, err = db.Squares(cfg.Output)
	require.Nil(t, err)
	assert.Equal(t, []Square{first[2], first[0], first[1]}, squares)

	// Storing again replaces everything
	second := []Square{{Cell{1, 1}, "orchard", 0}}
	require.Nil(t, db.Store(cfg, "DEF", second))

	squares, err = db.Squares(cfg.Output)
	require.Nil(t, err)
	assert.Equal(t, second, squares)

	sha, err = db.SHA1(cfg.Output)
	require.Nil(t, err)
	assert.Equal(t, "DEF", sha)
}

func TestMapDBDuplicateSquare(t *testing.T) {
	db, err := NewMapDB(filepath.Join(t.TempDir(), "gamemap.db"))
	require.Nil(t, err)
	defer db.Close()

	cfg := supported(t)
	require.Nil(t, db.Store(cfg, "ABC", []Square{{Cell{1, 1}, Open, -1}}))

	// The whole store is rolled back on failure
	err = db.Store(cfg, "DEF", []Square{{Cell{2, 2}, Open, -1}, {Cell{2, 2}, "woods", -1}})
	assert.NotNil(t, err)

	squares, err := db.Squares(cfg.Output)
	require.Nil(t, err)
	assert.Equal(t, []Square{{Cell{1, 1}, Open, -1}}, squares)
}
