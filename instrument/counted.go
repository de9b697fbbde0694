package instrument

import (
	"fmt"

	"github.com/amp-labs/amp-algorithms/sortable"
)

// Counted wraps a sortable value and bumps a Counter on every LessThan or
// Equals call made on it. The counter pointer travels with the value, so the
// wrapped elements can be copied, swapped and re-sliced freely.
type Counted[T sortable.Sortable[T]] struct {
	Value T

	counter *Counter
}

// Track wraps every value with the given counter. A nil counter is allowed
// and disables counting.
func Track[T sortable.Sortable[T]](values []T, counter *Counter) []Counted[T] {
	return sortable.Convert(values, func(v T) Counted[T] {
		return Counted[T]{Value: v, counter: counter}
	})
}

// Untrack strips the wrappers and returns the plain values.
func Untrack[T sortable.Sortable[T]](values []Counted[T]) []T {
	return sortable.Convert(values, func(c Counted[T]) T { return c.Value })
}

// Of wraps a single value, typically a search target.
func Of[T sortable.Sortable[T]](value T, counter *Counter) Counted[T] {
	return Counted[T]{Value: value, counter: counter}
}

func (c Counted[T]) Equals(other Counted[T]) bool {
	c.count()

	return c.Value.Equals(other.Value)
}

func (c Counted[T]) LessThan(other Counted[T]) bool {
	c.count()

	return c.Value.LessThan(other.Value)
}

func (c Counted[T]) String() string {
	return fmt.Sprint(c.Value)
}

func (c Counted[T]) count() {
	if c.counter != nil {
		c.counter.Inc()
	}
}
