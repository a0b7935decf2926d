package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/njagi/nsekit/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	analysisFlags
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the cumulative portfolio return chart as a PNG" }
func (*chartCmd) Usage() string {
	return `nsekit chart [-o <file>] [analysis flags]

  Runs the analysis and writes only the growth-of-1 line chart.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "nsekit_chart.png", "output PNG file")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := c.run(ctx)
	if !report.HasData() {
		fmt.Fprintln(os.Stderr, "Error: no price data could be retrieved, nothing to chart")
		return subcommands.ExitFailure
	}
	png, err := renderer.Chart(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
