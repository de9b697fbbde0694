package sortable

import (
	"golang.org/x/text/cases"
)

// Folded is a string ordered case-insensitively using full Unicode case folding,
// so "Straße", "STRASSE" and "strasse" are all equal.
type Folded string

var _ Sortable[Folded] = (*Folded)(nil)

// Key returns the case-folded form used for comparison.
func (f Folded) Key() string {
	// A Caser keeps state between calls, so each comparison gets a fresh one.
	return cases.Fold().String(string(f))
}

func (f Folded) Equals(other Folded) bool {
	return f.Key() == other.Key()
}

func (f Folded) LessThan(other Folded) bool {
	return f.Key() < other.Key()
}
