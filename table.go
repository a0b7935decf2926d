package nsekit

import (
	"slices"

	"github.com/njagi/nsekit/date"
)

// Table is an aligned view over several price series sharing a common date
// index: every row holds a value for every surviving instrument. Columns keep
// the order in which the instruments were requested.
type Table struct {
	tickers []string
	days    []date.Date
	cells   [][]float64 // cells[i][j] is the price of tickers[j] on days[i]
}

// Dropped records an instrument excluded from a Table and why.
type Dropped struct {
	Ticker string
	Err    error
}

// BuildTable aligns the successfully fetched series onto a common date index.
// Each series is forward-filled over the union of all observed dates, then
// rows where some instrument still has no value (dates before its first
// observation) are dropped. Instruments that failed to fetch or produced no
// observation are excluded from the table and reported in the second return
// value; an empty table is a normal outcome, not an error.
func BuildTable(results []FetchResult) (*Table, []Dropped) {
	var dropped []Dropped
	kept := make([]FetchResult, 0, len(results))
	for _, r := range results {
		switch {
		case r.Err != nil:
			dropped = append(dropped, Dropped{r.Ticker, r.Err})
		case r.Series == nil || r.Series.Len() == 0:
			dropped = append(dropped, Dropped{r.Ticker, ErrNoData})
		default:
			kept = append(kept, r)
		}
	}

	t := new(Table)
	for _, r := range kept {
		t.tickers = append(t.tickers, r.Ticker)
	}
	if len(kept) == 0 {
		return t, dropped
	}

	all := make([][]date.Date, len(kept))
	for i, r := range kept {
		all[i] = r.Series.days
	}
	row := make([]float64, len(kept))
	for on := range date.Union(all...) {
		complete := true
		for j, r := range kept {
			v, ok := r.Series.AsOf(on)
			if !ok {
				complete = false
				break
			}
			row[j] = v
		}
		if !complete {
			continue
		}
		t.days = append(t.days, on)
		t.cells = append(t.cells, slices.Clone(row))
	}
	return t, dropped
}

// Tickers returns the instruments present in the table, in column order.
func (t *Table) Tickers() []string { return slices.Clone(t.tickers) }

// Len returns the number of aligned rows.
func (t *Table) Len() int { return len(t.days) }

// Days returns the common date index, in chronological order.
func (t *Table) Days() []date.Date { return slices.Clone(t.days) }

// At returns the price of the j-th instrument on the i-th day.
func (t *Table) At(i, j int) float64 { return t.cells[i][j] }

// Column returns the aligned prices of one instrument, or false if the
// instrument is not in the table.
func (t *Table) Column(ticker string) ([]float64, bool) {
	j := slices.Index(t.tickers, ticker)
	if j < 0 {
		return nil, false
	}
	col := make([]float64, len(t.days))
	for i := range t.days {
		col[i] = t.cells[i][j]
	}
	return col, true
}
