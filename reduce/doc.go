// Package reduce implements forecasting by reduction to supervised
// regression.
//
// Reduction recasts a forecasting problem as one or more regression
// problems: a sliding window turns the series into feature/target matrices,
// a regression estimator is fitted to them, and the estimator's outputs are
// assembled back into multi-step forecasts.
//
// # Quick Start
//
// Create a forecaster from any regressor:
//
//	reg := regression.NewLinearRegression()
//	f, err := reduce.MakeReduction(reg, &reduce.Config{
//	    Strategy:     reduce.StrategyRecursive,
//	    WindowLength: 15,
//	})
//	fh, _ := reduce.NewHorizon(1, 2, 3)
//	f.Fit(series, nil, nil)
//	forecast, err := f.Predict(fh, nil)
//
// # Strategies
//
// Four strategies decide how many estimators are fitted and how per-step
// predictions are assembled:
//
//   - direct: one estimator per horizon offset
//   - recursive: one one-step estimator applied iteratively, feeding back
//     its own predictions
//   - multioutput: one estimator producing all offsets at once
//   - dirrec: one estimator per offset, each seeing prior offsets'
//     predictions as extra features
//
// The direct, multioutput and dirrec strategies need the horizon at fit
// time and serve exactly that horizon at predict time. The recursive
// strategy serves any out-of-sample horizon, and additionally supports
// panel data (FitPanel/PredictPanel) and en-bloc feature derivation via a
// summarize.WindowSummarizer.
//
// # Error Policy
//
// Horizons are strictly out-of-sample; in-sample offsets fail with
// ErrInSample. A window length reaching past the end of the series fails
// fit with ErrIncompatibleWindow rather than silently truncating. A last
// window containing missing or infinite values is not an error: Predict
// returns an all-NaN forecast of the requested length so downstream
// pipelines can continue.
package reduce
