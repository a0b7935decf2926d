// Package quant provides summary statistics over daily return series.
//
// Every function is stateless and pure: it takes an explicit return series
// and computes one statistic, so callers compose exactly what a report needs
// instead of extending a shared series type.
package quant

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/njagi/nsekit"
	"github.com/njagi/nsekit/date"
)

// TradingDays is the annualization convention: trading days per year.
const TradingDays = 252

// TotalReturn compounds daily fractional returns into the total fractional
// return over the whole series.
func TotalReturn(returns []float64) float64 {
	growth := 1.0
	for _, r := range returns {
		growth *= 1 + r
	}
	return growth - 1
}

// Cumulative returns the growth-of-1 curve: element i is the value of 1 unit
// invested at the start, after compounding returns[0..i].
func Cumulative(returns []float64) []float64 {
	curve := make([]float64, len(returns))
	growth := 1.0
	for i, r := range returns {
		growth *= 1 + r
		curve[i] = growth
	}
	return curve
}

// CAGR annualizes the total return geometrically over the series length.
// It returns 0 for an empty series.
func CAGR(returns []float64) float64 {
	n := len(returns)
	if n == 0 {
		return 0
	}
	growth := 1 + TotalReturn(returns)
	if growth <= 0 {
		return -1
	}
	years := float64(n) / TradingDays
	return math.Pow(growth, 1/years) - 1
}

// Volatility is the annualized sample standard deviation of daily returns.
// It returns 0 with fewer than two observations.
func Volatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDays)
}

// Sharpe is the annualized return over the annualized volatility, with a
// risk-free rate of zero. It returns 0 when the volatility is zero.
func Sharpe(returns []float64) float64 {
	vol := Volatility(returns)
	if vol == 0 {
		return 0
	}
	return CAGR(returns) / vol
}

// MaxDrawdown is the largest peak-to-trough decline of the growth-of-1
// curve, as a positive fraction. It returns 0 for an empty series.
func MaxDrawdown(returns []float64) float64 {
	var maxDrawdown float64
	peak := 1.0
	growth := 1.0
	for _, r := range returns {
		growth *= 1 + r
		if growth > peak {
			peak = growth
		}
		if drawdown := (peak - growth) / peak; drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	return maxDrawdown
}

// MeanDaily is the arithmetic mean of the daily returns.
func MeanDaily(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return stat.Mean(returns, nil)
}

// MonthlyReturn is the compounded return of one calendar month.
type MonthlyReturn struct {
	Year   int
	Month  time.Month
	Return float64
}

// MonthlyReturns compounds a daily return series into one return per calendar
// month present in the series, in chronological order.
func MonthlyReturns(series nsekit.ReturnSeries) []MonthlyReturn {
	var out []MonthlyReturn
	for i, on := range series.Days {
		last := len(out) - 1
		if last < 0 || out[last].Year != on.Year() || out[last].Month != on.Month() {
			out = append(out, MonthlyReturn{Year: on.Year(), Month: on.Month()})
			last++
		}
		out[last].Return = (1+out[last].Return)*(1+series.Values[i]) - 1
	}
	return out
}

// BestDay returns the date and value of the highest daily return.
// An empty series yields zero values.
func BestDay(series nsekit.ReturnSeries) (date.Date, float64) {
	return pickDay(series, func(candidate, current float64) bool { return candidate > current })
}

// WorstDay returns the date and value of the lowest daily return.
// An empty series yields zero values.
func WorstDay(series nsekit.ReturnSeries) (date.Date, float64) {
	return pickDay(series, func(candidate, current float64) bool { return candidate < current })
}

func pickDay(series nsekit.ReturnSeries, better func(candidate, current float64) bool) (date.Date, float64) {
	if series.IsEmpty() {
		return date.Date{}, 0
	}
	day, value := series.Days[0], series.Values[0]
	for i := 1; i < series.Len(); i++ {
		if better(series.Values[i], value) {
			day, value = series.Days[i], series.Values[i]
		}
	}
	return day, value
}

// Summary bundles the statistics of one portfolio return series.
type Summary struct {
	TotalReturn  float64
	CAGR         float64
	Volatility   float64
	Sharpe       float64
	MaxDrawdown  float64
	BestDay      date.Date
	BestReturn   float64
	WorstDay     date.Date
	WorstReturn  float64
	Observations int
}

// Summarize computes the full summary of a portfolio return series.
// An empty series yields a zero summary.
func Summarize(series nsekit.ReturnSeries) Summary {
	s := Summary{
		TotalReturn:  TotalReturn(series.Values),
		CAGR:         CAGR(series.Values),
		Volatility:   Volatility(series.Values),
		Sharpe:       Sharpe(series.Values),
		MaxDrawdown:  MaxDrawdown(series.Values),
		Observations: series.Len(),
	}
	s.BestDay, s.BestReturn = BestDay(series)
	s.WorstDay, s.WorstReturn = WorstDay(series)
	return s
}
