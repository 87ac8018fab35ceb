// Package goreduce provides forecasting by reduction to supervised
// regression.
//
// GoReduce turns a time-series forecasting task into a tabular (or panel)
// regression problem via sliding-window feature construction, and turns the
// fitted regressor's outputs back into multi-step forecasts. Any regression
// estimator satisfying the regression.Regressor contract can be reused for
// forecasting without writing window-slicing and strategy logic by hand.
//
// # Features
//
//   - Sliding-window transform with exogenous covariates and strict
//     leakage prevention
//   - Four forecasting strategies: direct, recursive, multioutput, dirrec
//   - Panel (multi-series) forecasting with per-instance windows
//   - En-bloc feature derivation (rolling lags, means, ...) as an
//     alternative to raw lagged windows
//   - Bundled least-squares and baseline regressors on gonum
//
// # Quick Start
//
// Reduce a linear regressor to a recursive forecaster:
//
//	series := timeseries.New(values)
//	f, _ := reduce.MakeReduction(regression.NewLinearRegression(),
//	    &reduce.Config{Strategy: reduce.StrategyRecursive, WindowLength: 12})
//	f.Fit(series, nil, nil)
//	fh, _ := reduce.NewHorizon(1, 2, 3)
//	forecast, _ := f.Predict(fh, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - reduce: strategies, horizon, and the MakeReduction factory
//   - window: sliding-window transform and last-window extraction
//   - summarize: rolling summary feature derivation
//   - regression: estimator contracts and bundled estimators
//   - timeseries: series, covariate, and panel data structures
//   - stats: forecast accuracy metrics
//
// # References
//
//   - Bontempi, G., Ben Taieb, S., & Le Borgne, Y.-A. (2013). Machine
//     Learning Strategies for Time Series Forecasting.
package goreduce
