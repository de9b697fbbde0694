package sortable

import (
	"github.com/amp-labs/amp-algorithms/compare"
)

// Sortable is the capability every algorithm in this module is written against.
// LessThan must define a strict total order, and Equals must agree with it:
// a.Equals(b) exactly when neither a.LessThan(b) nor b.LessThan(a).
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Greater reports whether a sorts strictly after b.
func Greater[T Sortable[T]](a, b T) bool {
	return b.LessThan(a)
}

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T Sortable[T]](a, b T) bool {
	return !b.LessThan(a)
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T Sortable[T]](a, b T) bool {
	return !a.LessThan(b)
}

// Equivalent reports whether neither value sorts before the other. For a
// well-behaved Sortable this matches Equals, but it only uses LessThan.
func Equivalent[T Sortable[T]](a, b T) bool {
	return !a.LessThan(b) && !b.LessThan(a)
}

// Min returns the first occurrence of the smallest element in values.
// The boolean is false when values is empty.
func Min[T Sortable[T]](values []T) (T, bool) { //nolint:ireturn
	var least T

	if len(values) == 0 {
		return least, false
	}

	least = values[0]

	for _, v := range values[1:] {
		if v.LessThan(least) {
			least = v
		}
	}

	return least, true
}

// Max returns the first occurrence of the largest element in values.
// The boolean is false when values is empty.
func Max[T Sortable[T]](values []T) (T, bool) { //nolint:ireturn
	var most T

	if len(values) == 0 {
		return most, false
	}

	most = values[0]

	for _, v := range values[1:] {
		if most.LessThan(v) {
			most = v
		}
	}

	return most, true
}

// IsSorted reports whether values is in ascending order, that is
// values[i] <= values[i+1] for every valid i.
func IsSorted[T Sortable[T]](values []T) bool {
	for i := 1; i < len(values); i++ {
		if values[i].LessThan(values[i-1]) {
			return false
		}
	}

	return true
}

// Convert applies f to every element of values and returns the results in a
// new slice. It is used to move between raw values and their sortable wrappers.
func Convert[A, B any](values []A, f func(A) B) []B {
	out := make([]B, len(values))

	for i, v := range values {
		out[i] = f(v)
	}

	return out
}
