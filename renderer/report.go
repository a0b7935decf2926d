package renderer

import (
	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
	"github.com/njagi/nsekit/quant"
)

// Holding is the per-instrument line of the report.
type Holding struct {
	Ticker    string
	Asked     float64 // weight as requested by the user, on the user's scale
	Applied   float64 // realigned weight, a fraction of 1
	First     float64 // first aligned price
	Last      float64 // last aligned price
	Return    float64 // fractional price return over the period
	FirstDate date.Date
	LastDate  date.Date
}

// DroppedLine reports an instrument excluded from the analysis.
type DroppedLine struct {
	Ticker string
	Reason string
}

// Report is the fully computed analysis handed to the templates.
type Report struct {
	Title     string
	Range     date.Range
	Holdings  []Holding
	Dropped   []DroppedLine
	Stats     quant.Summary
	Monthly   []quant.MonthlyReturn
	Portfolio nsekit.ReturnSeries
}

// NewReport computes every figure the report shows from one analysis run.
// An empty table yields a report whose Portfolio is empty; the templates
// render that as a "no data" notice.
func NewReport(title string, rng date.Range, table *nsekit.Table, requested nsekit.Weighting, dropped []nsekit.Dropped) *Report {
	r := &Report{Title: title, Range: rng}
	for _, d := range dropped {
		r.Dropped = append(r.Dropped, DroppedLine{Ticker: d.Ticker, Reason: d.Err.Error()})
	}

	applied := table.Realign(requested)
	days := table.Days()
	for j, ticker := range table.Tickers() {
		h := Holding{Ticker: ticker, Applied: applied[j].Weight}
		h.Asked, _ = requested.Get(ticker)
		if n := len(days); n > 0 {
			h.FirstDate, h.LastDate = days[0], days[n-1]
			h.First, h.Last = table.At(0, j), table.At(n-1, j)
			h.Return = h.Last/h.First - 1
		}
		r.Holdings = append(r.Holdings, h)
	}

	r.Portfolio = table.PortfolioReturns(requested)
	r.Stats = quant.Summarize(r.Portfolio)
	r.Monthly = quant.MonthlyReturns(r.Portfolio)
	return r
}

// HasData reports whether the analysis produced at least one portfolio return.
func (r *Report) HasData() bool { return !r.Portfolio.IsEmpty() }
