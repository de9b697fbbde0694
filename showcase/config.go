package showcase

import (
	"fmt"
	"slices"

	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/xform"
)

// Config is the CLI configuration, read from the environment.
type Config struct {
	// ScenariosFile is a YAML scenario file; empty means the built-in scenarios.
	ScenariosFile string
	// Only restricts the run to these algorithm names; empty means all.
	Only []string
	// Interactive asks for an algorithm and an input on the terminal.
	Interactive bool
	// MetricsFile receives the Prometheus metrics after the run, if set.
	MetricsFile string
	BannerWidth int
	NoBanner    bool
}

// LoadConfig reads the ALGORITHMS_* variables. Every malformed variable is
// reported, not just the first.
func LoadConfig() (Config, error) {
	var (
		cfg  Config
		errs errors.Collection
	)

	positive := func(v int) error {
		_, err := xform.Positive(v)

		return err
	}

	scenarios := envutil.FilePath("ALGORITHMS_SCENARIOS", envutil.Default(""))
	only := envutil.List("ALGORITHMS_ONLY", envutil.Default[[]string](nil)).Map(xform.EachOf(Names()...))
	interactive := envutil.Bool("ALGORITHMS_INTERACTIVE", envutil.Default(false))
	metrics := envutil.String("ALGORITHMS_METRICS_FILE", envutil.Default(""))
	width := envutil.Int("ALGORITHMS_BANNER_WIDTH", envutil.Default(cli.DefaultWidth), envutil.Validate(positive))
	noBanner := envutil.Bool("ALGORITHMS_NO_BANNER", envutil.Default(false))

	cfg.ScenariosFile = value(scenarios, &errs)
	cfg.Only = value(only, &errs)
	cfg.Interactive = value(interactive, &errs)
	cfg.MetricsFile = value(metrics, &errs)
	cfg.BannerWidth = value(width, &errs)
	cfg.NoBanner = value(noBanner, &errs)

	if err := errs.GetError(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func value[T any](rdr envutil.Reader[T], errs *errors.Collection) T { //nolint:ireturn
	v, err := rdr.Value()
	errs.Add(err)

	return v
}

// Scenarios returns the configured scenarios.
func (c Config) Scenarios() ([]Scenario, error) {
	if c.ScenariosFile == "" {
		return DefaultScenarios(), nil
	}

	return LoadScenarios(c.ScenariosFile)
}

// Algorithms returns the configured algorithms, in registry order.
func (c Config) Algorithms() []Algorithm {
	if len(c.Only) == 0 {
		return Algorithms()
	}

	return slices.DeleteFunc(Algorithms(), func(a Algorithm) bool {
		return !slices.Contains(c.Only, a.Name)
	})
}

// ReportOptions derives report layout from the configuration.
func (c Config) ReportOptions() ReportOptions {
	return ReportOptions{
		Width: c.BannerWidth,
		Plain: c.NoBanner,
	}
}
