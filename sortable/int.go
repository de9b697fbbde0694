package sortable

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, so plain integers can be handed
// to the search and sorting packages.
//
// Example:
//
//	sorted := sorting.Insertion(sortable.Ints(2, 1, 9))
//	// sorted is [1 2 9]
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Ints wraps the given integers.
func Ints(values ...int) []Int {
	return Convert(values, func(v int) Int { return Int(v) })
}

// ToInts unwraps a slice of Int back into plain integers.
func ToInts(values []Int) []int {
	return Convert(values, func(v Int) int { return int(v) })
}
