package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/timeseries"
	"github.com/sartorproj/goreduce/window"
)

// DirectForecaster reduces forecasting to regression using the direct
// strategy: a separate regressor is fitted for each step of the forecasting
// horizon.
type DirectForecaster struct {
	base
	estimators []estimator
}

// Fit transforms the training data once and fits one cloned regressor per
// horizon offset. The horizon is required at fit time.
func (f *DirectForecaster) Fit(y *timeseries.Series, X *timeseries.Table, fh *Horizon) error {
	if fh == nil {
		return fmt.Errorf("the direct strategy requires the forecasting horizon at fit time")
	}
	if err := window.CheckWindowLength(f.windowLength, y.Len()); err != nil {
		return err
	}

	targets, features, err := window.Transform(y, X, f.windowLength, fh.Offsets())
	if err != nil {
		return err
	}

	f.estimators = f.estimators[:0]
	for j := 0; j < fh.Len(); j++ {
		est := f.cloneEstimator()
		if err := est.fit(features, mat.Col(nil, j, targets)); err != nil {
			return fmt.Errorf("fitting estimator for offset %d: %w", fh.Offsets()[j], err)
		}
		f.estimators = append(f.estimators, est)
	}

	f.y = y
	f.x = X
	f.effWindow = f.windowLength
	f.fittedFH = fh
	f.fitted = true
	return nil
}

// Predict builds a single feature row from the last window and invokes each
// per-offset regressor once. The horizon must match the one seen at fit.
func (f *DirectForecaster) Predict(fh *Horizon, _ *timeseries.Table) (*timeseries.Series, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}
	fh, err := f.resolveHorizon(fh)
	if err != nil {
		return nil, err
	}

	yLast, xLast := window.LastWindow(f.y, f.x, f.effWindow)
	if !window.Predictable(yLast, f.effWindow) {
		return f.nanForecast(fh), nil
	}

	xPred := f.lastWindowTensor(yLast, xLast)
	values := make([]float64, fh.Len())
	for i, est := range f.estimators {
		pred, err := est.predict(xPred)
		if err != nil {
			return nil, err
		}
		values[i] = pred[0]
	}
	return f.forecastSeries(fh, values), nil
}
