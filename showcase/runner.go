package showcase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/amp-labs/amp-algorithms/compare"
	"github.com/amp-labs/amp-algorithms/hashing"
	"github.com/amp-labs/amp-algorithms/instrument"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/google/uuid"
)

var (
	ErrWrongAnswer    = errors.New("wrong answer")
	ErrNotSorted      = errors.New("output is not sorted")
	ErrNotPermutation = errors.New("output is not a permutation of the input")
	ErrNotIdempotent  = errors.New("sorting the output again changed it")
	ErrInputModified  = errors.New("input was modified")
)

// Result is the outcome of one algorithm on one scenario.
type Result struct {
	Scenario    string
	Algorithm   string
	Kind        Kind
	Input       []int
	Target      *int
	Found       bool
	Output      []int
	Comparisons int64
	Err         error
}

// OK reports whether every check passed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0

	for _, r := range results {
		if !r.OK() {
			n++
		}
	}

	return n
}

// Observer receives the comparison count of every run.
type Observer func(algorithm string, comparisons int64)

// Runner runs scenarios through algorithms and checks the answers.
type Runner struct {
	algorithms []Algorithm
	observe    Observer
}

// Option configures a Runner.
type Option func(*Runner)

// WithAlgorithms restricts the runner to the given algorithms.
func WithAlgorithms(algos ...Algorithm) Option {
	return func(r *Runner) {
		r.algorithms = algos
	}
}

// WithObserver replaces the default observer, which records Prometheus metrics.
func WithObserver(observe Observer) Option {
	return func(r *Runner) {
		r.observe = observe
	}
}

// NewRunner returns a runner over every algorithm unless told otherwise.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		algorithms: Algorithms(),
		observe:    instrument.Observe,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every scenario against every algorithm of the same kind, in
// scenario order. A failed check is reported in the Result, not as an error;
// the error is only set when ctx is cancelled, along with the results so far.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	ctx = logger.With(ctx, "run_id", uuid.NewString())
	log := logger.Get(ctx)

	var results []Result

	for _, sc := range scenarios {
		for _, algo := range r.algorithms {
			if algo.Kind != sc.Kind {
				continue
			}

			if err := ctx.Err(); err != nil {
				return results, err
			}

			res := runOne(sc, algo)
			results = append(results, res)

			if r.observe != nil {
				r.observe(algo.Name, res.Comparisons)
			}

			if res.OK() {
				log.Info("algorithm run",
					"scenario", sc.Name,
					"algorithm", algo.Name,
					"comparisons", res.Comparisons)
			} else {
				log.Error("algorithm run failed",
					"error", logger.AnnotateError(res.Err, "scenario", sc.Name, "algorithm", algo.Name))
			}
		}
	}

	log.Debug("run finished", "results", len(results), "failed", Failed(results))

	return results, nil
}

func runOne(sc Scenario, algo Algorithm) Result {
	res := Result{
		Scenario:  sc.Name,
		Algorithm: algo.Name,
		Kind:      algo.Kind,
		Input:     slices.Clone(sc.Input),
		Target:    sc.Target,
	}

	counter := instrument.NewCounter()
	tracked := instrument.Track(sortable.Ints(sc.Input...), counter)

	if algo.Kind == KindSearch {
		res.Found = algo.Search(tracked, instrument.Of(sortable.Int(*sc.Target), counter))
		res.Comparisons = counter.Load()
		res.Err = checkSearch(sc, res.Found)

		return res
	}

	out := algo.Sort(tracked)
	res.Comparisons = counter.Load()
	res.Output = sortable.ToInts(instrument.Untrack(out))

	errs := []error{checkSort(sc, res.Output)}

	if !slices.Equal(sortable.ToInts(instrument.Untrack(tracked)), sc.Input) {
		errs = append(errs, ErrInputModified)
	}

	again := instrument.Untrack(algo.Sort(instrument.Track(sortable.Ints(res.Output...), nil)))
	if !compare.Slices(again, sortable.Ints(res.Output...)) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrNotIdempotent, sortable.ToInts(again)))
	}

	res.Err = errors.Join(errs...)

	return res
}

func checkSearch(sc Scenario, found bool) error {
	member := slices.Contains(sc.Input, *sc.Target)

	var errs []error

	if found != member {
		errs = append(errs, fmt.Errorf("%w: found=%v, membership=%v", ErrWrongAnswer, found, member))
	}

	if sc.Found != nil && *sc.Found != found {
		errs = append(errs, fmt.Errorf("%w: found=%v, expected %v", ErrWrongAnswer, found, *sc.Found))
	}

	return errors.Join(errs...)
}

func checkSort(sc Scenario, out []int) error {
	var errs []error

	if !sortable.IsSorted(sortable.Ints(out...)) {
		errs = append(errs, fmt.Errorf("%w: %v", ErrNotSorted, out))
	}

	if hashing.Multiset(out, hashing.FmtKey[int]) != hashing.Multiset(sc.Input, hashing.FmtKey[int]) {
		errs = append(errs, fmt.Errorf("%w: %v from %v", ErrNotPermutation, out, sc.Input))
	}

	if sc.Sorted != nil && !slices.Equal(out, sc.Sorted) {
		errs = append(errs, fmt.Errorf("%w: got %v, expected %v", ErrWrongAnswer, out, sc.Sorted))
	}

	return errors.Join(errs...)
}
