// Package hashing computes order-independent fingerprints of slices. Two slices
// holding the same multiset of elements, in any order, get the same
// fingerprint; that is how the showcase checks that a sort's output is a
// permutation of its input without trusting another sort to do it.
package hashing

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// KeyFunc renders an element as the bytes that identify it. Elements that
// should count as the same must render identically.
type KeyFunc[T any] func(value T) []byte

// FmtKey renders values with the %v verb. It is a reasonable default for
// numbers, strings and the sortable wrapper types.
func FmtKey[T any](value T) []byte {
	return fmt.Appendf(nil, "%v", value)
}

// Fingerprint summarises a multiset. Each element hash is folded in with both
// addition and xor; neither operation depends on order.
type Fingerprint struct {
	Count int
	Sum   uint64
	Xor   uint64
}

// Multiset fingerprints values using key to identify elements.
func Multiset[T any](values []T, key KeyFunc[T]) Fingerprint {
	fp := Fingerprint{Count: len(values)}

	for _, v := range values {
		h := xxh3.Hash(key(v))

		fp.Sum += h
		fp.Xor ^= h
	}

	return fp
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%d:%016x:%016x", f.Count, f.Sum, f.Xor)
}
