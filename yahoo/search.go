package yahoo

import (
	"context"
	"fmt"
	"net/url"
)

// SearchResult matches one quote item in the Yahoo search API response.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	ExchDisp  string `json:"exchDisp"`
	QuoteType string `json:"quoteType"`
}

// Search looks up instruments matching a free-form term.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	query := url.Values{
		"q":           {term},
		"quotesCount": {"10"},
		"newsCount":   {"0"},
	}

	var lastErr error
	for _, host := range c.hosts {
		addr := fmt.Sprintf("%s/v1/finance/search?%s", host, query.Encode())
		var payload struct {
			Quotes []SearchResult `json:"quotes"`
		}
		if err := jwget(ctx, c.client, addr, &payload); err != nil {
			lastErr = err
			continue
		}
		return payload.Quotes, nil
	}
	return nil, lastErr
}
