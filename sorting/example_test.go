package sorting_test

import (
	"fmt"

	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
)

func ExampleInsertion() {
	input := sortable.Ints(2, 1, 9, 6, 22, -1)

	fmt.Println(sorting.Insertion(input))
	fmt.Println(input)
	// Output:
	// [-1 1 2 6 9 22]
	// [2 1 9 6 22 -1]
}

func ExampleBubble() {
	fmt.Println(sorting.Bubble(sortable.Ints(5)))
	// Output: [5]
}

func ExampleSelection() {
	fmt.Println(sorting.Selection(sortable.Strings("pear", "apple", "fig")))
	// Output: [apple fig pear]
}
