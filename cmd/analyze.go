package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/njagi/nsekit/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	analysisFlags
	raw bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio and print its performance report" }
func (*analyzeCmd) Usage() string {
	return `nsekit analyze [-t <tickers>] [-w <weights>] [-start <date>] [-end <date>]

  Fetches historical prices for the requested tickers, computes the weighted
  daily portfolio returns, and prints the performance report. Tickers with no
  data are dropped and their weight redistributed.

Usage Examples:
# Equal-weighted default portfolio over the last year.
$ nsekit analyze

# Custom weights (any scale) over a fixed window.
$ nsekit analyze -t SCOM.KE,EQTY.KE -w SCOM.KE:70,EQTY.KE:30 -start 2023-01-01 -end 2023-12-31

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "print plain markdown instead of rendering for the terminal")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := c.run(ctx)
	printMarkdown(renderer.Markdown(report), c.raw)
	return subcommands.ExitSuccess
}
