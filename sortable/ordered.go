package sortable

import "cmp"

// Ordered adapts any built-in ordered type (integers, floats, strings) to the
// Sortable interface without declaring a dedicated wrapper. Ordering follows
// cmp.Compare, so NaN values sort first.
//
//	values := []sortable.Ordered[uint16]{{V: 3}, {V: 1}}
type Ordered[T cmp.Ordered] struct {
	V T
}

// Of wraps each value in an Ordered.
func Of[T cmp.Ordered](values ...T) []Ordered[T] {
	return Convert(values, func(v T) Ordered[T] { return Ordered[T]{V: v} })
}

func (o Ordered[T]) Equals(other Ordered[T]) bool {
	return cmp.Compare(o.V, other.V) == 0
}

func (o Ordered[T]) LessThan(other Ordered[T]) bool {
	return cmp.Less(o.V, other.V)
}
