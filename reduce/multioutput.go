package reduce

import (
	"fmt"

	"github.com/sartorproj/goreduce/regression"
	"github.com/sartorproj/goreduce/timeseries"
	"github.com/sartorproj/goreduce/window"
)

// MultioutputForecaster reduces forecasting to regression using the
// multioutput strategy: a single regressor capable of multi-output targets
// is fitted to all horizon steps in one call.
type MultioutputForecaster struct {
	base
	estimator regression.MultiOutputRegressor
}

// Fit transforms the training data and fits one multi-output regressor on
// the full target matrix. The horizon is required at fit time; the base
// estimator must support multi-output targets.
func (f *MultioutputForecaster) Fit(y *timeseries.Series, X *timeseries.Table, fh *Horizon) error {
	if fh == nil {
		return fmt.Errorf("the multioutput strategy requires the forecasting horizon at fit time")
	}
	if f.tabEst == nil {
		return fmt.Errorf("the multioutput strategy requires a tabular regressor")
	}
	mo, ok := f.tabEst.Clone().(regression.MultiOutputRegressor)
	if !ok {
		return fmt.Errorf("estimator does not support multi-output targets")
	}
	if err := window.CheckWindowLength(f.windowLength, y.Len()); err != nil {
		return err
	}

	targets, features, err := window.Transform(y, X, f.windowLength, fh.Offsets())
	if err != nil {
		return err
	}
	if err := mo.FitMulti(features.Matrix(), targets); err != nil {
		return err
	}

	f.estimator = mo
	f.y = y
	f.x = X
	f.effWindow = f.windowLength
	f.fittedFH = fh
	f.fitted = true
	return nil
}

// Predict builds a single feature row from the last window and invokes the
// regressor once, returning its full output vector. The horizon must match
// the one seen at fit.
func (f *MultioutputForecaster) Predict(fh *Horizon, _ *timeseries.Table) (*timeseries.Series, error) {
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
	out, err := f.estimator.PredictMulti(xPred.Matrix())
	if err != nil {
		return nil, err
	}

	values := make([]float64, fh.Len())
	for i := range values {
		values[i] = out.At(0, i)
	}
	return f.forecastSeries(fh, values), nil
}
