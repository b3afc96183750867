package gamemap

// Override adjusts the classification of a square after it has been sampled.
type Override interface {
	Apply(Square) Square
}

// ColumnBand assigns Elevation to every column up to and including
// MaxColumn.
type ColumnBand struct {
	MaxColumn int
	Elevation int
}

// ElevationByColumn replaces the sampled elevation of any square classified
// as Terrain. Cells is consulted first, then Bands in order, falling back to
// Otherwise.
type ElevationByColumn struct {
	Terrain   string
	Cells     map[Cell]int
	Bands     []ColumnBand
	Otherwise int
}

// Apply implements the Override interface.
func (o *ElevationByColumn) Apply(s Square) Square {
	if s.Terrain != o.Terrain {
		return s
	}
	if e, ok := o.Cells[s.Cell]; ok {
		s.Elevation = e
		return s
	}
	for _, b := range o.Bands {
		if s.Column <= b.MaxColumn {
			s.Elevation = b.Elevation
			return s
		}
	}
	s.Elevation = o.Otherwise
	return s
}

func applyFixes(fixes map[Cell]Fix, s Square) Square {
	if f, ok := fixes[s.Cell]; ok {
		s.Terrain = f.Terrain
		s.Elevation = f.Elevation
	}
	return s
}
