// Command algorithms runs the search and sort showcase and prints a report of
// results and comparison counts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/instrument"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/script"
	"github.com/amp-labs/amp-algorithms/showcase"
)

func main() {
	script.New("algorithms").Run(run)
}

func run(ctx context.Context) error {
	cfg, err := showcase.LoadConfig()
	if err != nil {
		return script.ExitWithError(err)
	}

	scenarios, algos, err := plan(cfg)
	if err != nil {
		return script.ExitWithError(err)
	}

	results, err := showcase.NewRunner(showcase.WithAlgorithms(algos...)).Run(ctx, scenarios)
	if err != nil {
		return script.ExitWithError(err)
	}

	if err := showcase.WriteReport(os.Stdout, results, cfg.ReportOptions()); err != nil {
		return script.ExitWithError(err)
	}

	if cfg.MetricsFile != "" {
		if err := instrument.WriteTextfile(cfg.MetricsFile); err != nil {
			return script.ExitWithError(fmt.Errorf("writing metrics: %w", err))
		}

		logger.Get(ctx).Debug("wrote metrics", "path", cfg.MetricsFile)
	}

	if failed := showcase.Failed(results); failed > 0 {
		return script.ExitWithErrorMessage("%d of %d runs failed", failed, len(results))
	}

	return nil
}

// plan returns what to run: the configured scenarios and algorithms, or a
// single custom scenario built from terminal prompts.
func plan(cfg showcase.Config) ([]showcase.Scenario, []showcase.Algorithm, error) {
	if !cfg.Interactive {
		scenarios, err := cfg.Scenarios()
		if err != nil {
			return nil, nil, err
		}

		return scenarios, cfg.Algorithms(), nil
	}

	name, err := cli.Select("Algorithm", showcase.Names()...)
	if err != nil {
		return nil, nil, err
	}

	algo, ok := showcase.Lookup(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown algorithm %q", name)
	}

	input, err := cli.PromptInts("Numbers (comma separated)")
	if err != nil {
		return nil, nil, err
	}

	var target int

	if algo.Kind == showcase.KindSearch {
		if target, err = cli.PromptInt("Target"); err != nil {
			return nil, nil, err
		}
	}

	return []showcase.Scenario{showcase.CustomScenario(algo.Kind, input, target)}, []showcase.Algorithm{algo}, nil
}
