package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/njagi/nsekit/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	analysisFlags
	output    string
	chartFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the analysis as a standalone HTML report" }
func (*reportCmd) Usage() string {
	return `nsekit report [-o <file>] [-chart <file>] [analysis flags]

  Runs the same analysis as 'analyze' and writes a single self-contained HTML
  file with the cumulative-return chart embedded. With -chart, the chart is
  additionally written as a separate PNG.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "nsekit_report.html", "output HTML file")
	f.StringVar(&c.chartFile, "chart", "", "also write the chart to this PNG file")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report := c.run(ctx)
	page, err := renderer.HTML(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.output, page, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.output)

	if c.chartFile != "" && report.HasData() {
		png, err := renderer.Chart(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.chartFile, png, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.chartFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Chart written to %s\n", c.chartFile)
	}

	if !report.HasData() {
		fmt.Println("Note: no price data could be retrieved; the report only lists the dropped tickers.")
	}
	return subcommands.ExitSuccess
}
