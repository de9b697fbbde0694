// Package instrument counts the comparisons an algorithm performs and exports
// the totals as Prometheus metrics.
//
// Wrap the input with Track, run any search or sort over the wrapped values,
// then read the shared Counter:
//
//	counter := instrument.NewCounter()
//	sorted := sorting.Bubble(instrument.Track(sortable.Ints(3, 1, 2), counter))
//	fmt.Println(counter.Load()) // 6
package instrument

import (
	"go.uber.org/atomic"
)

// Counter is a comparison counter shared by every Counted value of one run.
// It is safe for concurrent use.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc records one comparison.
func (c *Counter) Inc() {
	c.n.Inc()
}

// Load returns the number of comparisons recorded so far.
func (c *Counter) Load() int64 {
	return c.n.Load()
}

// Reset sets the counter back to zero and returns the previous value.
func (c *Counter) Reset() int64 {
	return c.n.Swap(0)
}
