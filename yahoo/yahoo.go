// Package yahoo fetches historical daily quotes from the Yahoo Finance
// chart API. It implements nsekit.Fetcher.
package yahoo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
)

// Client fetches historical quotes from the Yahoo Finance endpoints.
// The zero value is not usable; use NewClient.
type Client struct {
	hosts  []string // tried in order until one answers
	client *http.Client
}

// NewClient returns a client backed by the public Yahoo hosts and a disk
// cache where responses expire daily, so repeated runs within a day do not
// re-hit the API.
func NewClient() *Client {
	return &Client{
		hosts:  []string{"https://query1.finance.yahoo.com", "https://query2.finance.yahoo.com"},
		client: newDailyCachingClient(),
	}
}

// NewClientForHost returns a client bound to a single host, without caching.
// Used by tests and by callers routing through a proxy.
func NewClientForHost(host string) *Client {
	return &Client{hosts: []string{host}, client: new(http.Client)}
}

var _ nsekit.Fetcher = (*Client)(nil)

// Fetch returns the daily adjusted closing prices of one ticker over the
// range. When the ticker has a known exchange-suffix variant and comes back
// empty, the variant is fetched once and its data returned
// under the requested ticker, so weights keyed by the requested name still
// match.
func (c *Client) Fetch(ctx context.Context, ticker string, r date.Range) (*nsekit.PriceSeries, error) {
	series, err := c.fetchDaily(ctx, ticker, r)
	if err == nil && series.Len() > 0 {
		return series, nil
	}

	alt, ok := variant(ticker)
	if !ok {
		return series, err
	}
	log.Printf("no data for %s, retrying as %s", ticker, alt)
	altSeries, altErr := c.fetchDaily(ctx, alt, r)
	if altErr == nil && altSeries.Len() > 0 {
		return altSeries, nil
	}
	// keep the original outcome: the variant was a one-shot fallback
	return series, err
}

// chartResp matches the v8 chart API payload. Close values are pointers
// because Yahoo emits null for non-traded slots.
type chartResp struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Adjclose []struct {
					Adjclose []*decimal.Decimal `json:"adjclose"`
				} `json:"adjclose"`
				Quote []struct {
					Close []*decimal.Decimal `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchDaily queries the v8 chart endpoint on each host in turn, falling back
// to the v7 spark endpoint when none answers with a usable payload.
func (c *Client) fetchDaily(ctx context.Context, ticker string, r date.Range) (*nsekit.PriceSeries, error) {
	// period2 is exclusive, so push it past the end of the last day.
	query := url.Values{
		"period1":  {fmt.Sprint(r.From.Unix())},
		"period2":  {fmt.Sprint(r.To.Add(1).Unix())},
		"interval": {"1d"},
		"events":   {"div,splits"},
	}

	var lastErr error
	for _, host := range c.hosts {
		addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", host, url.PathEscape(ticker), query.Encode())
		var payload chartResp
		if err := jwget(ctx, c.client, addr, &payload); err != nil {
			lastErr = err
			continue
		}
		if e := payload.Chart.Error; e != nil {
			lastErr = fmt.Errorf("chart API error for %s: %s (%s)", ticker, e.Description, e.Code)
			continue
		}
		return chartSeries(payload, r), nil
	}

	series, sparkErr := c.fetchSpark(ctx, ticker, r)
	if sparkErr != nil {
		return nil, fmt.Errorf("fetching %s: %w (spark fallback: %v)", ticker, lastErr, sparkErr)
	}
	return series, nil
}

// chartSeries converts a chart payload into a price series, preferring
// adjusted closes and skipping null or non-positive slots.
func chartSeries(payload chartResp, r date.Range) *nsekit.PriceSeries {
	series := new(nsekit.PriceSeries)
	if len(payload.Chart.Result) == 0 {
		return series
	}
	result := payload.Chart.Result[0]

	var closes []*decimal.Decimal
	if len(result.Indicators.Adjclose) > 0 {
		closes = result.Indicators.Adjclose[0].Adjclose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}

	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		price := closes[i].InexactFloat64()
		if price <= 0 {
			continue
		}
		on := date.FromUnix(ts)
		if !r.Contains(on) {
			continue
		}
		series.Append(on, price)
	}
	return series
}
