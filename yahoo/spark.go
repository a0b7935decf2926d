package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
)

// fetchSpark queries the lighter v7 spark endpoint, used when the chart
// endpoint rejects the request. The payload is deeply nested, so the two
// arrays of interest are extracted by path instead of mirroring the whole
// structure in types.
func (c *Client) fetchSpark(ctx context.Context, ticker string, r date.Range) (*nsekit.PriceSeries, error) {
	query := url.Values{
		"symbols":  {strings.ToUpper(ticker)},
		"range":    {"1y"},
		"interval": {"1d"},
	}

	var lastErr error
	for _, host := range c.hosts {
		addr := fmt.Sprintf("%s/v7/finance/spark?%s", host, query.Encode())
		var jobj any
		if err := jwget(ctx, c.client, addr, &jobj); err != nil {
			lastErr = err
			continue
		}
		timestamps, err := floats(jobj, "$.spark.result[0].response[0].timestamp")
		if err != nil {
			lastErr = fmt.Errorf("spark payload for %s: %w", ticker, err)
			continue
		}
		closes, err := floats(jobj, "$.spark.result[0].response[0].indicators.quote[0].close")
		if err != nil {
			lastErr = fmt.Errorf("spark payload for %s: %w", ticker, err)
			continue
		}

		series := new(nsekit.PriceSeries)
		for i, ts := range timestamps {
			if i >= len(closes) || closes[i] <= 0 {
				continue
			}
			on := date.FromUnix(int64(ts))
			if !r.Contains(on) {
				continue
			}
			series.Append(on, closes[i])
		}
		return series, nil
	}
	return nil, lastErr
}

// floats evaluates a jsonpath expression expected to yield a numeric array.
// Null elements (non-traded slots) are kept as zeros so indexes stay aligned
// with the companion array.
func floats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q: want an array, got %T", path, jval)
	}
	out := make([]float64, len(jlist))
	for i, v := range jlist {
		f, ok := v.(float64)
		if !ok && v != nil {
			return nil, fmt.Errorf("path %q: element %d is %T, want a number", path, i, v)
		}
		out[i] = f
	}
	return out, nil
}
