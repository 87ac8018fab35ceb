// Package regression defines the regressor contract consumed by reduction
// forecasters and provides bundled estimators.
package regression

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/window"
)

// Regressor is the contract for tabular regression estimators. Fit consumes
// a 2-D feature matrix with one row per training sample; Predict returns one
// value per input row. Clone returns an unfitted copy carrying the same
// configuration, so a forecaster can own several independent instances.
type Regressor interface {
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) ([]float64, error)
	Clone() Regressor
}

// MultiOutputRegressor is implemented by regressors that can fit several
// target columns in a single call, as the multioutput reduction strategy
// requires.
type MultiOutputRegressor interface {
	Regressor
	FitMulti(X *mat.Dense, Y *mat.Dense) error
	PredictMulti(X *mat.Dense) (*mat.Dense, error)
}

// TimeSeriesRegressor is the contract for estimators that consume panel
// data: a 3-D tensor of lagged windows rather than a flat feature matrix.
type TimeSeriesRegressor interface {
	FitWindows(X *window.Tensor, y []float64) error
	PredictWindows(X *window.Tensor) ([]float64, error)
	CloneTimeSeries() TimeSeriesRegressor
}
