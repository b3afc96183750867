package palette

// Tally counts occurrences of colors, remembering the order in which each
// color was first seen so that ties are always resolved the same way.
type Tally struct {
	order  []Color
	counts map[Color]int
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{
		counts: make(map[Color]int),
	}
}

// Add increments the count for c.
func (t *Tally) Add(c Color) {
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c]++
}

// Count returns the number of times c has been added.
func (t *Tally) Count(c Color) int {
	return t.counts[c]
}

// Len returns the number of distinct colors.
func (t *Tally) Len() int {
	return len(t.order)
}

// Colors returns the distinct colors in the order they were first added.
func (t *Tally) Colors() []Color {
	return append([]Color(nil), t.order...)
}

// MostCommon returns the color with the highest count along with the count.
// Among equal counts the color added first wins. The boolean is false if
// nothing has been added.
func (t *Tally) MostCommon() (Color, int, bool) {
	var best Color
	n := 0
	for _, c := range t.order {
		if t.counts[c] > n {
			best, n = c, t.counts[c]
		}
	}
	return best, n, n > 0
}
