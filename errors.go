package gamemap

import (
	"fmt"
	"image"
)

// UnsupportedImageError is returned when an image filename is not present in
// the registry.
type UnsupportedImageError struct {
	Name string
}

func (e *UnsupportedImageError) Error() string {
	return fmt.Sprintf("Unknown file %s", e.Name)
}

// DimensionMismatchError is returned when a decoded image is not the size
// its configuration expects.
type DimensionMismatchError struct {
	Got, Want image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("wrong image size: got %dx%d, want %dx%d", e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}
