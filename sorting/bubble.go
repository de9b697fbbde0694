package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Bubble makes exactly len(values) passes over every adjacent pair, swapping
// pairs that are out of order. There is no early exit when a pass makes no
// swaps, so the cost is O(n²) comparisons whatever the input looks like.
func Bubble[T sortable.Sortable[T]](values []T) []T {
	out := working(values)

	for range out {
		for i := 0; i+1 < len(out); i++ {
			if out[i+1].LessThan(out[i]) {
				out[i], out[i+1] = out[i+1], out[i]
			}
		}
	}

	return out
}
