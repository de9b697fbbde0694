package search

import "github.com/amp-labs/amp-algorithms/sortable"

// BinaryRecursive has the same contract as BinaryIterative but recurses on the
// half of the slice that can still hold target. Each call first checks target
// against the bounds of the current sub-slice and gives up early when it falls
// outside them. The input is sorted, so the bounds are the first and last
// elements and the check costs two comparisons instead of a scan.
//
// Sub-slices share the caller's backing array, nothing is copied. Recursion
// depth is O(log n).
func BinaryRecursive[T sortable.Sortable[T]](values []T, target T) bool {
	if len(values) == 0 {
		return false
	}

	if target.LessThan(values[0]) || values[len(values)-1].LessThan(target) {
		return false
	}

	mid := len(values) / 2

	switch {
	case target.Equals(values[mid]):
		return true
	case values[mid].LessThan(target):
		return BinaryRecursive(values[mid+1:], target)
	default:
		return BinaryRecursive(values[:mid], target)
	}
}
