package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	raw bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search for a ticker symbol by name" }
func (*searchCmd) Usage() string {
	return `nsekit search <term>

  Looks up instruments matching <term> and prints their symbols, so you
  can find the exact ticker to pass to 'analyze' or 'report'.

  Usage Examples:

    nsekit search safaricom
    nsekit search "equity group"

`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "print plain markdown instead of rendering for the terminal")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	term := strings.TrimSpace(strings.Join(f.Args(), " "))
	if term == "" {
		fmt.Fprintln(os.Stderr, "Error: missing search term")
		return subcommands.ExitUsageError
	}

	results, err := newFetcher().Search(ctx, term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Printf("No instruments found for %q.\n", term)
		return subcommands.ExitSuccess
	}

	var md strings.Builder
	md.WriteString("| Symbol | Name | Exchange | Type |\n")
	md.WriteString("|--------|------|----------|------|\n")
	for _, r := range results {
		name := r.LongName
		if name == "" {
			name = r.ShortName
		}
		exch := r.ExchDisp
		if exch == "" {
			exch = r.Exchange
		}
		fmt.Fprintf(&md, "| %s | %s | %s | %s |\n", r.Symbol, name, exch, r.QuoteType)
	}
	printMarkdown(md.String(), c.raw)
	return subcommands.ExitSuccess
}
