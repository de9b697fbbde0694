// Package sorting implements the classic quadratic sorts: insertion, bubble
// and selection sort.
//
// Every sort treats its argument as read-only. It clones the input, orders the
// clone ascending and returns it, so the caller's slice is never modified.
// A nil or empty input produces an empty, non-nil slice.
package sorting

import "github.com/amp-labs/amp-algorithms/sortable"

// Func is the shape shared by every sort in this package.
type Func[T sortable.Sortable[T]] func(values []T) []T

// working returns the copy a sort is allowed to mutate.
func working[T any](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)

	return out
}
