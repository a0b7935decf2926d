package nsekit

import (
	"fmt"
	"strconv"
	"strings"
)

// Component pairs an instrument ticker with a weight.
type Component struct {
	Ticker string
	Weight float64
}

// Weighting is an ordered list of (ticker, weight) pairs. The pairing is
// explicit so a weight can never drift away from its instrument the way two
// independently keyed structures matched by position can.
//
// Requested weights may be on any scale ([0,100] percentages or [0,1]
// fractions, summing to anything): Realign divides by the raw sum, so both
// mean the same thing.
type Weighting []Component

// Get returns the weight requested for a ticker.
func (w Weighting) Get(ticker string) (float64, bool) {
	for _, c := range w {
		if c.Ticker == ticker {
			return c.Weight, true
		}
	}
	return 0, false
}

// Sum returns the sum of all weights.
func (w Weighting) Sum() float64 {
	var sum float64
	for _, c := range w {
		sum += c.Weight
	}
	return sum
}

// Tickers returns the tickers of the weighting, in order.
func (w Weighting) Tickers() []string {
	tickers := make([]string, len(w))
	for i, c := range w {
		tickers[i] = c.Ticker
	}
	return tickers
}

// EqualWeighting returns a weighting giving each ticker the same weight.
func EqualWeighting(tickers []string) Weighting {
	w := make(Weighting, len(tickers))
	for i, ticker := range tickers {
		w[i] = Component{Ticker: ticker, Weight: 1}
	}
	return w
}

// ParseWeighting parses a comma-separated list of "TICKER:WEIGHT" pairs, e.g.
// "SCOM.KE:50,EQTY.KE:30,KCB.KE:20". Weights must be non-negative; duplicate
// tickers are rejected.
func ParseWeighting(s string) (Weighting, error) {
	var w Weighting
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ticker, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid weight %q: want TICKER:WEIGHT", part)
		}
		ticker = strings.TrimSpace(ticker)
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %q: %w", ticker, err)
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative weight for %q: %v", ticker, weight)
		}
		if _, dup := w.Get(ticker); dup {
			return nil, fmt.Errorf("duplicate ticker %q", ticker)
		}
		w = append(w, Component{Ticker: ticker, Weight: weight})
	}
	return w, nil
}

// Realign returns the weights to apply to the instruments that survived in
// the table, in the table's column order, normalized to sum to 1. A requested
// ticker absent from the table is silently dropped; a table ticker with no
// requested weight counts as 0. When no surviving instrument carries any
// requested weight, the result falls back to equal weighting among them, so
// the sum is never zero for a non-empty table.
func (t *Table) Realign(requested Weighting) Weighting {
	n := len(t.tickers)
	if n == 0 {
		return nil
	}
	realigned := make(Weighting, 0, n)
	var sum float64
	for _, ticker := range t.tickers {
		weight, _ := requested.Get(ticker)
		realigned = append(realigned, Component{Ticker: ticker, Weight: weight})
		sum += weight
	}
	if sum > 0 {
		for i := range realigned {
			realigned[i].Weight /= sum
		}
		return realigned
	}
	// All surviving instruments were requested at weight 0 (or the weighted
	// tickers all failed to fetch): spread the portfolio evenly.
	for i := range realigned {
		realigned[i].Weight = 1 / float64(n)
	}
	return realigned
}
