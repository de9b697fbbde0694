package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Selection fills each position in turn with the smallest remaining element,
// taking the first one on ties. The swap happens even when the minimum is
// already in place.
//
// Long-distance swaps can reorder equal elements, so the sort is not stable.
// O(n²) comparisons, O(n) swaps.
func Selection[T sortable.Sortable[T]](values []T) []T {
	out := working(values)

	for i := range out {
		least := i

		for j := i + 1; j < len(out); j++ {
			if out[j].LessThan(out[least]) {
				least = j
			}
		}

		out[i], out[least] = out[least], out[i]
	}

	return out
}
