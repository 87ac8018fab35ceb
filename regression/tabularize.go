package regression

import (
	"errors"

	"github.com/sartorproj/goreduce/window"
)

// Tabularizer adapts a tabular regressor to the time-series regressor
// contract by flattening each 3-D window into a flat feature row.
type Tabularizer struct {
	Estimator Regressor
}

// NewTabularizer wraps a tabular regressor as a time-series regressor.
func NewTabularizer(estimator Regressor) *Tabularizer {
	return &Tabularizer{Estimator: estimator}
}

// CloneTimeSeries returns an unfitted copy wrapping a clone of the inner
// estimator.
func (t *Tabularizer) CloneTimeSeries() TimeSeriesRegressor {
	return &Tabularizer{Estimator: t.Estimator.Clone()}
}

// FitWindows flattens the window tensor and fits the inner estimator.
func (t *Tabularizer) FitWindows(X *window.Tensor, y []float64) error {
	if t.Estimator == nil {
		return errors.New("tabularizer has no inner estimator")
	}
	return t.Estimator.Fit(X.Matrix(), y)
}

// PredictWindows flattens the window tensor and predicts with the inner
// estimator.
func (t *Tabularizer) PredictWindows(X *window.Tensor) ([]float64, error) {
	if t.Estimator == nil {
		return nil, errors.New("tabularizer has no inner estimator")
	}
	return t.Estimator.Predict(X.Matrix())
}
