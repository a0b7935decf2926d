package nsekit

import (
	"testing"

	"github.com/njagi/nsekit/date"
)

func TestPriceSeries_AppendKeepsChronologicalOrder(t *testing.T) {
	s := new(PriceSeries).
		Append(date.MustParse("2023-01-05"), 3).
		Append(date.MustParse("2023-01-02"), 1).
		Append(date.MustParse("2023-01-03"), 2)

	var prev date.Date
	i := 0
	for on, price := range s.Values() {
		if i > 0 && !on.After(prev) {
			t.Errorf("dates out of order: %v after %v", on, prev)
		}
		if want := float64(i + 1); !closeTo(price, want) {
			t.Errorf("price[%d] = %v, want %v", i, price, want)
		}
		prev = on
		i++
	}
	if i != 3 {
		t.Errorf("Len() = %d, want 3", i)
	}
}

func TestPriceSeries_AppendReplacesDuplicateDate(t *testing.T) {
	day := date.MustParse("2023-01-02")
	s := new(PriceSeries).Append(day, 100).Append(day, 101)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if got, _ := s.Get(day); !closeTo(got, 101) {
		t.Errorf("Get() = %v, want the last appended value 101", got)
	}
}

func TestPriceSeries_AsOf(t *testing.T) {
	s := ps("2023-01-02", 100, 110) // Jan 2, Jan 3
	s.Append(date.MustParse("2023-01-06"), 120)

	tests := []struct {
		day    string
		want   float64
		wantOK bool
	}{
		{"2023-01-01", 0, false}, // before first observation
		{"2023-01-02", 100, true},
		{"2023-01-04", 110, true}, // gap, forward-filled
		{"2023-01-06", 120, true},
		{"2023-01-09", 120, true}, // after last observation
	}
	for _, tt := range tests {
		got, ok := s.AsOf(date.MustParse(tt.day))
		if ok != tt.wantOK || (ok && !closeTo(got, tt.want)) {
			t.Errorf("AsOf(%s) = %v, %v; want %v, %v", tt.day, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPriceSeries_FirstLast(t *testing.T) {
	s := ps("2023-01-02", 100, 110, 121)
	if on, price := s.First(); on != date.MustParse("2023-01-02") || !closeTo(price, 100) {
		t.Errorf("First() = %v, %v; want 2023-01-02, 100", on, price)
	}
	if on, price := s.Last(); on != date.MustParse("2023-01-04") || !closeTo(price, 121) {
		t.Errorf("Last() = %v, %v; want 2023-01-04, 121", on, price)
	}

	empty := new(PriceSeries)
	if on, price := empty.Last(); on != (date.Date{}) || price != 0 {
		t.Errorf("Last() on empty = %v, %v; want zero values", on, price)
	}
}
