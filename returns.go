package nsekit

import (
	"slices"

	"github.com/njagi/nsekit/date"
)

// ReturnSeries is an ordered series of daily fractional returns.
// It is one row shorter than the price table it derives from: the first
// date has no prior day to diff against.
type ReturnSeries struct {
	Days   []date.Date
	Values []float64
}

// Len returns the number of observations.
func (r ReturnSeries) Len() int { return len(r.Days) }

// IsEmpty reports whether the series has no observation.
func (r ReturnSeries) IsEmpty() bool { return len(r.Days) == 0 }

// InstrumentReturns pairs a ticker with its daily return series.
type InstrumentReturns struct {
	Ticker string
	ReturnSeries
}

// Returns computes the daily fractional return series of every instrument in
// the table: r[i] = p[i]/p[i-1] - 1 with the first row dropped. With fewer
// than two aligned rows every series is empty.
func (t *Table) Returns() []InstrumentReturns {
	out := make([]InstrumentReturns, len(t.tickers))
	for j, ticker := range t.tickers {
		out[j].Ticker = ticker
	}
	if len(t.days) < 2 {
		return out
	}
	days := slices.Clone(t.days[1:])
	for j := range t.tickers {
		values := make([]float64, 0, len(days))
		for i := 1; i < len(t.days); i++ {
			values = append(values, t.cells[i][j]/t.cells[i-1][j]-1)
		}
		out[j].Days = days
		out[j].Values = values
	}
	return out
}

// PortfolioReturns computes the weighted daily portfolio return series: for
// each date, the sum over instruments of the instrument's return times its
// realigned weight. The weights come from Realign on the same table, so the
// weight vector and the columns share one ordered view.
//
// An empty result (no surviving instrument, or fewer than two aligned rows)
// is a normal terminal state, not a failure.
func (t *Table) PortfolioReturns(requested Weighting) ReturnSeries {
	if len(t.tickers) == 0 || len(t.days) < 2 {
		return ReturnSeries{}
	}
	weights := t.Realign(requested)
	values := make([]float64, 0, len(t.days)-1)
	for i := 1; i < len(t.days); i++ {
		var r float64
		for j := range t.tickers {
			r += (t.cells[i][j]/t.cells[i-1][j] - 1) * weights[j].Weight
		}
		values = append(values, r)
	}
	return ReturnSeries{Days: slices.Clone(t.days[1:]), Values: values}
}
