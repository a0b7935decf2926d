package renderer

import (
	"errors"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/njagi/nsekit/quant"
)

// Chart renders the portfolio growth-of-1 curve as a PNG line chart.
func Chart(r *Report) ([]byte, error) {
	if !r.HasData() {
		return nil, errors.New("no portfolio data to chart")
	}
	curve := quant.Cumulative(r.Portfolio.Values)
	xAxis := make([]string, len(r.Portfolio.Days))
	for i, on := range r.Portfolio.Days {
		xAxis[i] = on.String()
	}

	painter, err := charts.LineRender(
		[][]float64{curve},
		charts.TitleTextOptionFunc(r.Title),
		charts.XAxisDataOptionFunc(xAxis),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"growth of 1"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(900),
		charts.HeightOptionFunc(420),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
