package sortable

// Keyed is a key/value pair that is ordered by its key alone. Two entries with
// equal keys are equal even if their values differ, which makes Keyed the
// natural way to tag duplicates when checking whether a sort is stable.
type Keyed[K Sortable[K], V any] struct {
	Key   K
	Value V
}

// NewKeyed creates a Keyed pair.
func NewKeyed[K Sortable[K], V any](key K, value V) Keyed[K, V] {
	return Keyed[K, V]{Key: key, Value: value}
}

func (k Keyed[K, V]) Equals(other Keyed[K, V]) bool {
	return k.Key.Equals(other.Key)
}

func (k Keyed[K, V]) LessThan(other Keyed[K, V]) bool {
	return k.Key.LessThan(other.Key)
}
