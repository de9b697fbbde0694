package showcase

import (
	"slices"

	"github.com/amp-labs/amp-algorithms/instrument"
	"github.com/amp-labs/amp-algorithms/search"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
)

// element is what the showcase feeds the algorithms: an int whose comparisons
// are counted.
type element = instrument.Counted[sortable.Int]

const (
	BinarySearchIterative = "binary-search-iterative"
	BinarySearchRecursive = "binary-search-recursive"
	InsertionSort         = "insertion-sort"
	BubbleSort            = "bubble-sort"
	SelectionSort         = "selection-sort"
)

// Algorithm is a named search or sort. Exactly one of Search and Sort is set,
// matching Kind.
type Algorithm struct {
	Name   string
	Kind   Kind
	Search search.Func[element]
	Sort   sorting.Func[element]
}

// Algorithms returns every algorithm in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: BinarySearchIterative, Kind: KindSearch, Search: search.BinaryIterative[element]},
		{Name: BinarySearchRecursive, Kind: KindSearch, Search: search.BinaryRecursive[element]},
		{Name: InsertionSort, Kind: KindSort, Sort: sorting.Insertion[element]},
		{Name: BubbleSort, Kind: KindSort, Sort: sorting.Bubble[element]},
		{Name: SelectionSort, Kind: KindSort, Sort: sorting.Selection[element]},
	}
}

// Names lists the algorithm names in the order of Algorithms.
func Names() []string {
	algos := Algorithms()
	names := make([]string, len(algos))

	for i, a := range algos {
		names[i] = a.Name
	}

	return names
}

// Lookup finds an algorithm by name.
func Lookup(name string) (Algorithm, bool) {
	algos := Algorithms()

	idx := slices.IndexFunc(algos, func(a Algorithm) bool { return a.Name == name })
	if idx < 0 {
		return Algorithm{}, false
	}

	return algos[idx], true
}
