package showcase

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Kind tells which family of algorithms a scenario exercises.
type Kind string

const (
	KindSearch Kind = "search"
	KindSort   Kind = "sort"
)

var (
	ErrUnknownKind         = errors.New("unknown scenario kind")
	ErrMissingTarget       = errors.New("search scenario has no target")
	ErrUnsortedSearchInput = errors.New("search input is not sorted ascending")
	ErrUnexpectedField     = errors.New("field does not apply to this kind")
	ErrDuplicateName       = errors.New("duplicate scenario name")
)

//go:embed scenarios.yaml
var defaultScenarios []byte

// Scenario is one input to run through every algorithm of its kind.
// Found and Sorted are optional expectations; without them a run is still
// checked against the invariants every search or sort must satisfy.
type Scenario struct {
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Input  []int  `yaml:"input"`
	Target *int   `yaml:"target,omitempty"`
	Found  *bool  `yaml:"found,omitempty"`
	Sorted []int  `yaml:"sorted,omitempty"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Validate checks a single scenario.
func (s Scenario) Validate() error {
	switch s.Kind {
	case KindSearch:
		if s.Target == nil {
			return fmt.Errorf("%w: %s", ErrMissingTarget, s.Name)
		}

		if !slices.IsSorted(s.Input) {
			return fmt.Errorf("%w: %s %v", ErrUnsortedSearchInput, s.Name, s.Input)
		}

		if s.Sorted != nil {
			return fmt.Errorf("%w: %s: sorted", ErrUnexpectedField, s.Name)
		}
	case KindSort:
		if s.Target != nil || s.Found != nil {
			return fmt.Errorf("%w: %s: target/found", ErrUnexpectedField, s.Name)
		}
	default:
		return fmt.Errorf("%w: %q in %s", ErrUnknownKind, s.Kind, s.Name)
	}

	return nil
}

// ParseScenarios decodes a YAML scenario document. Unnamed scenarios are named
// after their position; names must be unique.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Scenarios))

	for i := range file.Scenarios {
		sc := &file.Scenarios[i]

		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}

		if _, dup := seen[sc.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, sc.Name)
		}

		seen[sc.Name] = struct{}{}

		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}

	return file.Scenarios, nil
}

// LoadScenarios reads and parses a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}

	return ParseScenarios(data)
}

// DefaultScenarios returns the built-in scenarios.
func DefaultScenarios() []Scenario {
	scenarios, err := ParseScenarios(defaultScenarios)
	if err != nil {
		panic(fmt.Sprintf("built-in scenarios are invalid: %v", err))
	}

	return scenarios
}

// CustomScenario builds a one-off scenario for an interactive run. Binary
// search needs ascending input, so search inputs are sorted first; the target
// is ignored for sorts.
func CustomScenario(kind Kind, input []int, target int) Scenario {
	sc := Scenario{
		Name:  "custom",
		Kind:  kind,
		Input: slices.Clone(input),
	}

	if kind == KindSearch {
		slices.Sort(sc.Input)
		sc.Target = &target
	}

	return sc
}
