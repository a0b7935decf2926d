// Package cmd implements the CLI application to analyze a portfolio of
// listed instruments.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
	"github.com/njagi/nsekit/renderer"
	"github.com/njagi/nsekit/yahoo"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&reportCmd{},
	&chartCmd{},
	&fetchCmd{},
	&searchCmd{},
}

const (
	// EnvHost overrides the market-data host, e.g. to route through a proxy.
	EnvHost = "NSEKIT_HOST"
	// EnvTickers overrides the default ticker list.
	EnvTickers = "NSEKIT_TICKERS"
)

// defaultTickers is the portfolio analyzed when the user names nothing:
// the three most traded Nairobi Securities Exchange counters.
const defaultTickers = "SCOM.KE,EQTY.KE,KCB.KE"

// newFetcher returns the market-data client, honoring EnvHost.
func newFetcher() *yahoo.Client {
	if host := os.Getenv(EnvHost); host != "" {
		return yahoo.NewClientForHost(host)
	}
	return yahoo.NewClient()
}

// analysisFlags holds the flags shared by every command that runs an
// analysis, and their processed form after init.
type analysisFlags struct {
	tickers string
	weights string
	start   string
	end     string
	title   string
	// processed
	list      []string
	requested nsekit.Weighting
	rng       date.Range
}

func (c *analysisFlags) SetFlags(f *flag.FlagSet) {
	tickers := defaultTickers
	if env := os.Getenv(EnvTickers); env != "" {
		tickers = env
	}
	f.StringVar(&c.tickers, "t", tickers, "comma-separated tickers to analyze")
	f.StringVar(&c.weights, "w", "", "comma-separated TICKER:WEIGHT pairs (any scale); defaults to equal weights")
	f.StringVar(&c.start, "start", "", "start date, e.g. 2023-01-01 (defaults to one year ago)")
	f.StringVar(&c.end, "end", "", "end date (defaults to today)")
	f.StringVar(&c.title, "title", "NSE Performance Report", "report title")
}

func (c *analysisFlags) init() error {
	for part := range strings.SplitSeq(c.tickers, ",") {
		if part = strings.TrimSpace(part); part != "" {
			c.list = append(c.list, part)
		}
	}
	if len(c.list) == 0 {
		return errors.New("no tickers requested")
	}

	end := date.Today()
	if c.end != "" {
		var err error
		if end, err = date.Parse(c.end); err != nil {
			return fmt.Errorf("parsing end date: %w", err)
		}
	}
	start := end.Add(-365)
	if c.start != "" {
		var err error
		if start, err = date.Parse(c.start); err != nil {
			return fmt.Errorf("parsing start date: %w", err)
		}
	}
	c.rng = date.NewRange(start, end)

	if c.weights == "" {
		c.requested = nsekit.EqualWeighting(c.list)
		return nil
	}
	var err error
	if c.requested, err = nsekit.ParseWeighting(c.weights); err != nil {
		return fmt.Errorf("parsing weights: %w", err)
	}
	return nil
}

// run fetches the requested tickers and computes the full report.
func (c *analysisFlags) run(ctx context.Context) *renderer.Report {
	results := nsekit.FetchAll(ctx, newFetcher(), c.list, c.rng)
	table, dropped := nsekit.BuildTable(results)
	return renderer.NewReport(c.title, c.rng, table, c.requested, dropped)
}
