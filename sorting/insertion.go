package sorting

import (
	"slices"

	"github.com/amp-labs/amp-algorithms/sortable"
)

// Insertion sorts by growing a sorted prefix one element at a time. Each new
// element walks left while it is strictly less than its neighbour; every step
// removes it from its slot and re-inserts it one position earlier.
//
// The strict comparison means equal elements are never moved past each other,
// so the sort is stable. O(n²) in the worst case, O(n) when already sorted.
func Insertion[T sortable.Sortable[T]](values []T) []T {
	out := working(values)

	for i := 1; i < len(out); i++ {
		item := out[i]

		for j := i - 1; j >= 0 && item.LessThan(out[j]); j-- {
			out = slices.Delete(out, j+1, j+2)
			out = slices.Insert(out, j, item)
		}
	}

	return out
}
