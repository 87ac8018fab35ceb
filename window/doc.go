// Package window implements sliding-window feature construction for
// reduction forecasting.
//
// The central operation is Transform, which converts a time series (plus
// optional exogenous covariates) into aligned feature and target matrices:
//
//	targets, features, err := window.Transform(y, nil, 5, []int{1, 2, 3})
//
// Row r of the feature tensor holds the 5 most recent lagged values of every
// variable ending immediately before the target origin; row r of the target
// matrix holds the series values 1, 2 and 3 steps past that origin. No
// feature value ever comes from the same or a later time point than a target
// value it predicts.
//
// For tabular regression the 3-D feature tensor is flattened with
// Tensor.Matrix; time-series regressors consume the tensor directly.
//
// TransformSummarized supports the en-bloc alternative, where a
// summarize.WindowSummarizer generates feature columns (rolling means,
// lags, ...) from the raw series instead of fixed-width windows.
//
// LastWindow and Predictable support seeding predictions from the most
// recent observations.
package window
