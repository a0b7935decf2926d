package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/njagi/nsekit"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	analysisFlags
	asCSV bool
	raw   bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and print the aligned closing prices" }
func (*fetchCmd) Usage() string {
	return `nsekit fetch [-csv] [analysis flags]

  Fetches the requested tickers and prints the aligned price table, after
  forward-filling gaps and dropping incomplete rows. Useful to inspect
  exactly what the analysis computes on.

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.analysisFlags.SetFlags(f)
	f.BoolVar(&c.asCSV, "csv", false, "print CSV instead of a markdown table")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown instead of rendering for the terminal")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	results := nsekit.FetchAll(ctx, newFetcher(), c.list, c.rng)
	table, dropped := nsekit.BuildTable(results)
	for _, d := range dropped {
		fmt.Fprintf(os.Stderr, "Warning: %s dropped: %v\n", d.Ticker, d.Err)
	}

	if c.asCSV {
		return c.writeCSV(table)
	}

	var md strings.Builder
	tickers := table.Tickers()
	md.WriteString("| Date | " + strings.Join(tickers, " | ") + " |\n")
	md.WriteString("|------|" + strings.Repeat("------:|", len(tickers)) + "\n")
	for i, on := range table.Days() {
		md.WriteString("| " + on.String())
		for j := range tickers {
			fmt.Fprintf(&md, " | %.2f", table.At(i, j))
		}
		md.WriteString(" |\n")
	}
	printMarkdown(md.String(), c.raw)
	return subcommands.ExitSuccess
}

func (c *fetchCmd) writeCSV(table *nsekit.Table) subcommands.ExitStatus {
	w := csv.NewWriter(os.Stdout)
	tickers := table.Tickers()
	w.Write(append([]string{"date"}, tickers...))
	record := make([]string, len(tickers)+1)
	for i, on := range table.Days() {
		record[0] = on.String()
		for j := range tickers {
			record[j+1] = strconv.FormatFloat(table.At(i, j), 'f', -1, 64)
		}
		w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
