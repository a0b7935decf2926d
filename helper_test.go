package nsekit

import (
	"math"

	"github.com/njagi/nsekit/date"
)

// ps builds a price series of consecutive daily prices starting at 'start'.
func ps(start string, prices ...float64) *PriceSeries {
	s := new(PriceSeries)
	day := date.MustParse(start)
	for i, p := range prices {
		s.Append(day.Add(i), p)
	}
	return s
}

// fetched wraps a series as a successful fetch result.
func fetched(ticker string, s *PriceSeries) FetchResult {
	return FetchResult{Ticker: ticker, Series: s}
}

const tolerance = 1e-9

func closeTo(got, want float64) bool { return math.Abs(got-want) < tolerance }

func allCloseTo(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !closeTo(got[i], want[i]) {
			return false
		}
	}
	return true
}
