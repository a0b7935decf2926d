// Package nsekit computes weighted portfolio return series from historical
// instrument prices.
//
// The core pipeline is: fetch one price series per requested ticker (some may
// fail or come back empty), align the surviving series onto a common date
// index with BuildTable, then derive daily returns and a weighted portfolio
// return series with Table.Returns and Table.PortfolioReturns. Requested
// weights are renormalized over whatever subset of instruments actually has
// data, so a ticker the provider could not serve silently redistributes its
// weight instead of failing the run.
package nsekit
