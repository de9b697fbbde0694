// Package sortable provides the ordering capability used by the search and
// sorting packages, together with wrapper types for common primitives.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/amp-algorithms/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// Every algorithm in this module is generic over Sortable, so any type that can
// say whether it sorts before another value can be searched and sorted.
//
// Ready-made wrappers:
//   - [Int], [Byte], [String], [Float64] for the obvious primitives
//   - [Ordered] for any cmp.Ordered type without a dedicated wrapper
//   - [Natural] for human-friendly ordering of strings containing numbers
//   - [Folded] for case-insensitive ordering of Unicode strings
//   - [Keyed] for key/value pairs ordered by key only
//
// # Usage
//
//	values := sortable.Ints(2, 1, 9, 6, 22, -1)
//	sorted := sorting.Selection(values)
//	found := search.BinaryIterative(sorted, sortable.Int(9))
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan must be a strict total order (irreflexive, transitive, and total
// up to Equals). The derived helpers [Greater], [LessOrEqual], [GreaterOrEqual]
// and [Equivalent] only rely on LessThan.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are safe to share
// between goroutines for reading.
package sortable
