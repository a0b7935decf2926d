package nsekit

import (
	"context"
	"errors"

	"github.com/njagi/nsekit/date"
)

// Fetcher retrieves the historical daily closing prices of a single instrument.
type Fetcher interface {
	Fetch(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error)
}

// ErrNoData reports that the provider had no quotes for the requested window.
var ErrNoData = errors.New("no data for requested range")

// FetchResult holds the outcome of fetching one instrument: either a price
// series or the error that prevented it.
type FetchResult struct {
	Ticker string
	Series *PriceSeries
	Err    error
}

// FetchAll fetches every ticker and collects one result per ticker, in the
// requested order. A failed ticker never aborts the run: its error is
// recorded in its result and the next ticker is fetched.
//
// Fetches are sequential. They are independent read-only calls, so this could
// be parallelized without changing any output.
func FetchAll(ctx context.Context, f Fetcher, tickers []string, r date.Range) []FetchResult {
	results := make([]FetchResult, 0, len(tickers))
	for _, ticker := range tickers {
		series, err := f.Fetch(ctx, ticker, r)
		if err == nil && (series == nil || series.Len() == 0) {
			err = ErrNoData
		}
		results = append(results, FetchResult{Ticker: ticker, Series: series, Err: err})
	}
	return results
}
