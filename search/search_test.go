package search

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/stretchr/testify/assert"
)

var searches = []struct { //nolint:gochecknoglobals
	name string
	find Func[sortable.Int]
}{
	{name: "iterative", find: BinaryIterative[sortable.Int]},
	{name: "recursive", find: BinaryRecursive[sortable.Int]},
}

func TestBinarySearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []int
		target   int
		expected bool
	}{
		{name: "absent in the middle", values: []int{1, 2, 4, 8, 10, 34}, target: 5, expected: false},
		{name: "present in the middle", values: []int{1, 2, 4, 8, 10, 34}, target: 8, expected: true},
		{name: "first element", values: []int{1, 2, 4, 8, 10, 34}, target: 1, expected: true},
		{name: "last element", values: []int{1, 2, 4, 8, 10, 34}, target: 34, expected: true},
		{name: "below range", values: []int{1, 2, 4, 8, 10, 34}, target: -7, expected: false},
		{name: "above range", values: []int{1, 2, 4, 8, 10, 34}, target: 35, expected: false},
		{name: "nil", values: nil, target: 1, expected: false},
		{name: "empty", values: []int{}, target: 0, expected: false},
		{name: "single hit", values: []int{3}, target: 3, expected: true},
		{name: "single miss", values: []int{3}, target: 4, expected: false},
		{name: "two elements left", values: []int{3, 9}, target: 3, expected: true},
		{name: "two elements right", values: []int{3, 9}, target: 9, expected: true},
		{name: "two elements between", values: []int{3, 9}, target: 5, expected: false},
		{name: "duplicates", values: []int{1, 2, 2, 2, 2, 3}, target: 2, expected: true},
		{name: "all duplicates", values: []int{7, 7, 7, 7}, target: 7, expected: true},
		{name: "negatives", values: []int{-9, -4, -1, 0}, target: -4, expected: true},
	}

	for _, s := range searches {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				assert.Equal(t, tt.expected, s.find(sortable.Ints(tt.values...), sortable.Int(tt.target)))
			})
		}
	}
}

func TestBinarySearchMatchesLinearMembership(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec

	for range 200 {
		values := make([]int, rng.IntN(40))
		for i := range values {
			values[i] = rng.IntN(50) - 25
		}

		slices.Sort(values)
		wrapped := sortable.Ints(values...)

		for target := -27; target <= 27; target++ {
			want := slices.Contains(values, target)

			for _, s := range searches {
				if !assert.Equal(t, want, s.find(wrapped, sortable.Int(target)),
					"%s search for %d in %v", s.name, target, values) {
					return
				}
			}
		}
	}
}

func TestBinarySearchDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	values := sortable.Ints(1, 2, 4, 8, 10, 34)
	original := slices.Clone(values)

	for _, s := range searches {
		s.find(values, 10)
		s.find(values, 5)
	}

	assert.Equal(t, original, values)
}

func TestBinarySearchStrings(t *testing.T) {
	t.Parallel()

	words := sortable.Strings("apple", "banana", "cherry", "kiwi")

	assert.True(t, BinaryIterative(words, "cherry"))
	assert.True(t, BinaryRecursive(words, "kiwi"))
	assert.False(t, BinaryIterative(words, "grape"))
	assert.False(t, BinaryRecursive(words, "aardvark"))
}
