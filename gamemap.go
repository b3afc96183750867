/*
Package gamemap is a library for reading the terrain of each square of a
scanned board game map.

Each supported image has a built-in configuration describing where the grid
squares are and which colors on the map legend mean which terrain and
elevation. The image is quantized to those reference colors and a window
inside each square is sampled to decide what the square contains.
*/
package gamemap

import (
	"context"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/gamemap/preview"
)

// Preview outline colors
var (
	previewOpen       = color.RGBA{255, 0, 0, 255}
	previewClassified = color.RGBA{0, 0, 255, 255}
)

// Reader classifies supported map images.
type Reader struct {
	registry Registry
	db       *MapDB
	logger   *log.Logger

	// Workers is the number of rows classified concurrently. Less than
	// two classifies sequentially.
	Workers int
	// Preview is the path of a PNG preview to write alongside the table,
	// empty for none
	Preview string
	// PreviewWidth scales the preview, zero keeps the image size
	PreviewWidth uint
}

// New returns a Reader for the images in registry. db may be nil in which
// case nothing is stored.
func New(registry Registry, db *MapDB, logger *log.Logger) *Reader {
	return &Reader{
		registry: registry,
		db:       db,
		logger:   logger,
	}
}

func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", file, err)
	}

	// Drain anything the decoder didn't read so the hash covers the file
	if _, err := io.Copy(h, f); err != nil {
		return nil, "", err
	}

	return m, fmt.Sprintf("%X", h.Sum(nil)), nil
}

// Read classifies the image in file and writes the table to a CSV file in
// dir, returning its path. Nothing is written unless the image is
// registered and the expected size.
func (r *Reader) Read(file, dir string) (string, error) {
	cfg, ok := r.registry.Lookup(filepath.Base(file))
	if !ok {
		return "", &UnsupportedImageError{Name: filepath.Base(file)}
	}

	m, sha, err := decodeFile(file)
	if err != nil {
		return "", err
	}

	n, err := Normalize(m, cfg)
	if err != nil {
		return "", err
	}
	r.logger.Printf("Normalized \"%s\" for %s\n", file, cfg.Game)

	var squares []Square
	if r.Workers > 1 {
		if squares, err = classifyParallel(context.Background(), n, cfg, r.Workers); err != nil {
			return "", err
		}
	} else {
		squares = Classify(n, cfg)
	}
	r.logger.Printf("Classified %d squares\n", len(squares))

	out := filepath.Join(dir, cfg.Output+".csv")
	if err := writeTableFile(out, squares); err != nil {
		return "", err
	}
	r.logger.Printf("Wrote \"%s\"\n", out)

	if r.db != nil {
		if err := r.db.Store(cfg, sha, squares); err != nil {
			return "", err
		}
		r.logger.Printf("Stored %d squares for %s\n", len(squares), cfg.Output)
	}

	if r.Preview != "" {
		if err := writePreview(r.Preview, n, cfg, squares, r.PreviewWidth); err != nil {
			return "", err
		}
		r.logger.Printf("Wrote preview \"%s\"\n", r.Preview)
	}

	return out, nil
}

func writeTableFile(file string, squares []Square) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(file)
		}
	}()

	return WriteTable(f, squares)
}

func writePreview(file string, m image.Image, cfg *MapConfig, squares []Square, width uint) error {
	boxes := make([]preview.Box, len(squares))
	for i, s := range squares {
		boxes[i] = preview.Box{
			Rect:  cfg.Window(s.Cell),
			Color: previewOpen,
		}
		if s.Terrain != Open {
			boxes[i].Color = previewClassified
		}
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := preview.Encode(f, m, boxes, width); err != nil {
		return err
	}

	return f.Close()
}
