package nsekit

import (
	"iter"
	"slices"
	"sort"

	"github.com/njagi/nsekit/date"
)

// PriceSeries stores a chronological series of closing prices for one
// instrument. Dates are unique and the series is always sorted.
type PriceSeries struct {
	days   []date.Date
	prices []float64
}

// Len returns the number of observations in the series.
func (s *PriceSeries) Len() int { return len(s.days) }

// chronological is a private implementation to keep the series sorted by date.
type chronological struct{ *PriceSeries }

func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }

func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.prices[i], c.prices[j] = c.prices[j], c.prices[i]
}

func (s *PriceSeries) sort() { sort.Sort(chronological{s}) }

// Append adds an observation to the series, keeping it sorted.
// An existing value at that date is overwritten.
func (s *PriceSeries) Append(on date.Date, price float64) *PriceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		// A point already exists at that date. Replace it, giving higher
		// priority to the last data seen.
		s.prices[i] = price
		return s
	}
	s.days, s.prices = append(s.days, on), append(s.prices, price)
	s.sort()
	return s
}

// Values returns an iterator over all date/price pairs, in chronological order.
func (s *PriceSeries) Values() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.prices[i]) {
				return
			}
		}
	}
}

// Get returns the price observed exactly at 'day', if any.
func (s *PriceSeries) Get(day date.Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.prices[i], true
	}
	return 0, false
}

// AsOf returns the price on a given day, or the most recent price before it.
// It reports false when the day is before the first observation.
func (s *PriceSeries) AsOf(day date.Date) (float64, bool) {
	i, found := slices.BinarySearchFunc(s.days, day, func(d, t date.Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})
	if found {
		return s.prices[i], true
	}
	// 'i' is where 'day' would be inserted; the forward-filled value is at i-1.
	if i == 0 {
		return 0, false
	}
	return s.prices[i-1], true
}

// First returns the earliest date and price in the series.
// If the series is empty it returns zero values.
func (s *PriceSeries) First() (date.Date, float64) {
	if len(s.days) == 0 {
		return date.Date{}, 0
	}
	return s.days[0], s.prices[0]
}

// Last returns the latest date and price in the series.
// If the series is empty it returns zero values.
func (s *PriceSeries) Last() (date.Date, float64) {
	last := len(s.days) - 1
	if last < 0 {
		return date.Date{}, 0
	}
	return s.days[last], s.prices[last]
}
