package quant

import (
	"math"
	"testing"
	"time"

	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
)

const tolerance = 1e-9

func closeTo(got, want float64) bool { return math.Abs(got-want) < tolerance }

// series builds a return series of consecutive daily returns starting at 'start'.
func series(start string, returns ...float64) nsekit.ReturnSeries {
	day := date.MustParse(start)
	s := nsekit.ReturnSeries{Values: returns}
	for i := range returns {
		s.Days = append(s.Days, day.Add(i))
	}
	return s
}

func TestTotalReturn(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"compounding", []float64{0.10, 0.10}, 0.21},
		{"gain then loss", []float64{0.10, -0.10}, -0.01},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalReturn(tt.returns); !closeTo(got, tt.want) {
				t.Errorf("TotalReturn(%v) = %v, want %v", tt.returns, got, tt.want)
			}
		})
	}
}

func TestCumulative(t *testing.T) {
	got := Cumulative([]float64{0.1, -0.5, 0.2})
	want := []float64{1.1, 0.55, 0.66}
	for i := range want {
		if !closeTo(got[i], want[i]) {
			t.Errorf("Cumulative()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if len(Cumulative(nil)) != 0 {
		t.Error("Cumulative(nil) should be empty")
	}
}

func TestCAGR(t *testing.T) {
	// One year of identical daily returns compounding to +21%.
	daily := math.Pow(1.21, 1.0/TradingDays) - 1
	returns := make([]float64, TradingDays)
	for i := range returns {
		returns[i] = daily
	}
	if got := CAGR(returns); !closeTo(got, 0.21) {
		t.Errorf("CAGR() = %v, want 0.21", got)
	}
	if got := CAGR(nil); got != 0 {
		t.Errorf("CAGR(nil) = %v, want 0", got)
	}
}

func TestVolatility(t *testing.T) {
	// Mean 0, sample variance 0.02, annualized by sqrt(252).
	got := Volatility([]float64{0.1, -0.1})
	want := math.Sqrt(0.02 * TradingDays)
	if !closeTo(got, want) {
		t.Errorf("Volatility() = %v, want %v", got, want)
	}
	if got := Volatility([]float64{0.1}); got != 0 {
		t.Errorf("Volatility() with one observation = %v, want 0", got)
	}
}

func TestSharpe_ZeroVolatility(t *testing.T) {
	if got := Sharpe([]float64{0.01, 0.01, 0.01}); got != 0 {
		t.Errorf("Sharpe() with zero volatility = %v, want 0 (not NaN)", got)
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"halved from peak", []float64{0.1, -0.5, 0.2}, 0.5},
		{"monotonic rise", []float64{0.1, 0.1, 0.1}, 0},
		{"immediate loss", []float64{-0.2}, 0.2},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxDrawdown(tt.returns); !closeTo(got, tt.want) {
				t.Errorf("MaxDrawdown(%v) = %v, want %v", tt.returns, got, tt.want)
			}
		})
	}
}

func TestMonthlyReturns(t *testing.T) {
	// Two days in January, one in February.
	s := nsekit.ReturnSeries{
		Days: []date.Date{
			date.MustParse("2023-01-30"),
			date.MustParse("2023-01-31"),
			date.MustParse("2023-02-01"),
		},
		Values: []float64{0.10, 0.10, -0.10},
	}
	got := MonthlyReturns(s)
	if len(got) != 2 {
		t.Fatalf("MonthlyReturns() len = %d, want 2", len(got))
	}
	jan := got[0]
	if jan.Year != 2023 || jan.Month != time.January || !closeTo(jan.Return, 0.21) {
		t.Errorf("january = %+v, want 2023-01 at 0.21", jan)
	}
	feb := got[1]
	if feb.Month != time.February || !closeTo(feb.Return, -0.10) {
		t.Errorf("february = %+v, want 2023-02 at -0.10", feb)
	}
}

func TestBestAndWorstDay(t *testing.T) {
	s := series("2023-01-02", 0.01, -0.03, 0.05, -0.02)

	if day, value := BestDay(s); day != date.MustParse("2023-01-04") || !closeTo(value, 0.05) {
		t.Errorf("BestDay() = %v, %v; want 2023-01-04, 0.05", day, value)
	}
	if day, value := WorstDay(s); day != date.MustParse("2023-01-03") || !closeTo(value, -0.03) {
		t.Errorf("WorstDay() = %v, %v; want 2023-01-03, -0.03", day, value)
	}

	if day, value := BestDay(nsekit.ReturnSeries{}); day != (date.Date{}) || value != 0 {
		t.Errorf("BestDay(empty) = %v, %v; want zero values", day, value)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nsekit.ReturnSeries{})
	if got.TotalReturn != 0 || got.Sharpe != 0 || got.MaxDrawdown != 0 || got.Observations != 0 {
		t.Errorf("Summarize(empty) = %+v, want zero summary", got)
	}
}
