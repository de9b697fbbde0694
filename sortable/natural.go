package sortable

import "facette.io/natsort"

// Natural is a string ordered in natural sort order: runs of digits are compared
// numerically, so "file2" sorts before "file10".
//
// The ordering is intended for human-facing labels; it is not a locale-aware collation.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan compares using natural ordering. natsort.Compare answers true in
// both directions for strings it cannot tell apart (identical strings, or "a1"
// and "a01"); those ties fall back to byte order so the order stays strict.
func (n Natural) LessThan(other Natural) bool {
	a, b := string(n), string(other)

	ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)
	if ab != ba {
		return ab
	}

	return a < b
}
