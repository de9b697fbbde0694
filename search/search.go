// Package search implements binary search over ascending slices of sortable values.
//
// Both functions share one contract: they report whether target is present in
// values. values must already be sorted ascending (see sortable.IsSorted); the
// precondition is not checked and the answer is meaningless otherwise.
// Duplicates are fine, any matching occurrence counts.
package search

import "github.com/amp-labs/amp-algorithms/sortable"

// Func is the shape shared by every search in this package.
type Func[T sortable.Sortable[T]] func(values []T, target T) bool
