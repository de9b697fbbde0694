package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a, b  []int
		equal bool
	}{
		{name: "both empty", a: nil, b: []int{}, equal: true},
		{name: "same order", a: []int{1, 2, 3}, b: []int{1, 2, 3}, equal: true},
		{name: "permuted", a: []int{2, 1, 9, 6, 22, -1}, b: []int{-1, 1, 2, 6, 9, 22}, equal: true},
		{name: "permuted duplicates", a: []int{3, 1, 3}, b: []int{3, 3, 1}, equal: true},
		{name: "dropped element", a: []int{1, 2, 3}, b: []int{1, 2}, equal: false},
		{name: "replaced element", a: []int{1, 2, 3}, b: []int{1, 2, 4}, equal: false},
		{name: "duplicate count differs", a: []int{1, 1, 2}, b: []int{1, 2, 2}, equal: false},
		{name: "pair of duplicates added", a: []int{1}, b: []int{1, 5, 5}, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fa := Multiset(tt.a, FmtKey[int])
			fb := Multiset(tt.b, FmtKey[int])

			assert.Equal(t, tt.equal, fa == fb)
		})
	}
}

func TestFingerprintString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0:0000000000000000:0000000000000000", Multiset[int](nil, FmtKey[int]).String())
	assert.Regexp(t, `^3:[0-9a-f]{16}:[0-9a-f]{16}$`, Multiset([]string{"a", "b", "c"}, FmtKey[string]).String())
}
