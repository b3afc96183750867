package gamemap

import (
	"bufio"
	"fmt"
	"io"
)

// Header is the first line of every table. The last four columns are
// reserved for linear features and are always empty.
const Header = `"column","row","terrain","elevation","1st class roads","2nc class roads","rivers","streams"`

// WriteTable writes squares to w as CSV, one row per square in the order
// given.
func WriteTable(w io.Writer, squares []Square) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, s := range squares {
		if _, err := fmt.Fprintf(bw, "%d,%d,%q,%d,\"\",\"\",\"\",\"\"\n", s.Column, s.Row, s.Terrain, s.Elevation); err != nil {
			return err
		}
	}
	return bw.Flush()
}
