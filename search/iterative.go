package search

import "github.com/amp-labs/amp-algorithms/sortable"

// BinaryIterative narrows an inclusive [low, high] index window around target
// until it either hits it or the window is empty. It uses O(log n) comparisons
// and no extra memory.
func BinaryIterative[T sortable.Sortable[T]](values []T, target T) bool {
	low, high := 0, len(values)-1

	for low <= high {
		mid := (low + high) / 2

		switch {
		case target.Equals(values[mid]):
			return true
		case target.LessThan(values[mid]):
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return false
}
