package showcase

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-algorithms/cli"
)

// ReportOptions controls how WriteReport lays out its sections.
type ReportOptions struct {
	// Width of banners and dividers. Zero means cli.DefaultWidth.
	Width int
	// Plain replaces box drawing with simple "== title ==" headings.
	Plain bool
}

// WriteReport prints results grouped by scenario, followed by a summary line.
func WriteReport(w io.Writer, results []Result, opts ReportOptions) error {
	if opts.Width <= 0 {
		opts.Width = cli.DefaultWidth
	}

	var sb strings.Builder

	current := ""

	for i, res := range results {
		if i == 0 || res.Scenario != current {
			current = res.Scenario

			sb.WriteString(heading(res, opts))
		}

		sb.WriteString(line(res))
	}

	if !opts.Plain {
		sb.WriteString(cli.Divider(opts.Width))
	}

	failed := Failed(results)
	fmt.Fprintf(&sb, "%d runs, %d passed, %d failed\n", len(results), len(results)-failed, failed)

	_, err := io.WriteString(w, sb.String())

	return err
}

func heading(res Result, opts ReportOptions) string {
	title := fmt.Sprintf("%s %s %v", res.Scenario, res.Kind, res.Input)
	if res.Target != nil {
		title += fmt.Sprintf(" target=%d", *res.Target)
	}

	if opts.Plain {
		return "== " + title + " ==\n"
	}

	return cli.Banner(title, opts.Width, cli.AlignCenter)
}

func line(res Result) string {
	status := "ok  "
	if !res.OK() {
		status = "FAIL"
	}

	var outcome string

	if res.Kind == KindSearch {
		outcome = fmt.Sprintf("found=%v", res.Found)
	} else {
		outcome = fmt.Sprint(res.Output)
	}

	text := fmt.Sprintf("  %s %-24s %-28s %4d comparisons\n", status, res.Algorithm, outcome, res.Comparisons)

	if !res.OK() {
		for _, msg := range strings.Split(res.Err.Error(), "\n") {
			text += "       " + msg + "\n"
		}
	}

	return text
}
