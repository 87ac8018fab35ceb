// Package timeseries provides time series data structures and utilities.
//
// This package contains the Series type for univariate time series, the Table
// type for aligned exogenous covariates, and the Panel type for grouped
// collections of co-indexed series. It also includes CSV loading utilities.
//
// # Creating Time Series
//
// Create a series from values:
//
//	values := []float64{1.2, 2.3, 3.4, 4.5}
//	series := timeseries.New(values)
//
// Create with explicit timestamps:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # Covariates
//
// Exogenous variables are kept in a Table aligned row-for-row with the series:
//
//	table, err := timeseries.NewTable(series.Timestamps,
//	    []string{"temp", "promo"}, [][]float64{temps, promos})
//
// # Panels
//
// A Panel groups several series under instance keys, for example one series
// per store. Forecasting operations apply to each instance independently:
//
//	panel := timeseries.NewPanel()
//	panel.Add("store_1", s1)
//	panel.Add("store_2", s2)
//
// # Loading Data
//
// Load from CSV files:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.DateColumn = "ds"
//	opts.ValueColumn = "sales"
//	series, _, err := timeseries.LoadCSV("data.csv", opts)
//
// Load a panel grouped by an ID column:
//
//	opts.IDColumn = "store"
//	panel, err := timeseries.LoadCSVPanel("data.csv", opts)
package timeseries
