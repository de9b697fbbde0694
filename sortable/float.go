package sortable

import "math"

// Float64 is a sortable wrapper for float64. Plain float comparison is not a
// total order once NaN is involved, so Float64 places NaN before every number
// and treats all NaNs as equal to each other. Negative and positive zero are equal.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

func (f Float64) Equals(other Float64) bool {
	a, b := float64(f), float64(other)

	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

func (f Float64) LessThan(other Float64) bool {
	a, b := float64(f), float64(other)

	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}

	if math.IsNaN(b) {
		return false
	}

	return a < b
}
