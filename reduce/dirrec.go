package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/timeseries"
	"github.com/sartorproj/goreduce/window"
)

// DirRecForecaster reduces forecasting to regression using the hybrid
// dir-rec strategy: one regressor per horizon offset, where each offset's
// feature set is the full lagged window plus every earlier offset's target
// as an additional trailing column. At predict time the strategy is
// sequential, appending each generated prediction to the working window
// before predicting the next offset.
//
// Exogenous covariates are not supported by this strategy and are silently
// dropped when supplied.
type DirRecForecaster struct {
	base
	estimators []estimator
}

// Fit builds a combined feature-and-target window once and fits one cloned
// regressor per horizon offset on an expanding prefix of it: the regressor
// for the i-th offset sees windowLength+i trailing columns. The horizon is
// required at fit time. Covariates are dropped: filling future covariate
// positions of the expanding window is not supported.
func (f *DirRecForecaster) Fit(y *timeseries.Series, _ *timeseries.Table, fh *Horizon) error {
	if fh == nil {
		return fmt.Errorf("the dirrec strategy requires the forecasting horizon at fit time")
	}
	if err := window.CheckWindowLength(f.windowLength, y.Len()); err != nil {
		return err
	}

	targets, features, err := window.Transform(y, nil, f.windowLength, fh.Offsets())
	if err != nil {
		return err
	}

	// Combined [lagged window | targets] array, sliced per offset below.
	rows, _, _ := features.Dims()
	full := window.NewTensor(rows, 1, f.windowLength+fh.Len())
	for r := 0; r < rows; r++ {
		for k := 0; k < f.windowLength; k++ {
			full.Set(r, 0, k, features.At(r, 0, k))
		}
		for j := 0; j < fh.Len(); j++ {
			full.Set(r, 0, f.windowLength+j, targets.At(r, j))
		}
	}

	f.estimators = f.estimators[:0]
	for i := 0; i < fh.Len(); i++ {
		est := f.cloneEstimator()
		xFit := full.SliceLags(f.windowLength + i)
		if err := est.fit(xFit, mat.Col(nil, i, targets)); err != nil {
			return fmt.Errorf("fitting estimator for offset %d: %w", fh.Offsets()[i], err)
		}
		f.estimators = append(f.estimators, est)
	}

	f.y = y
	f.x = nil
	f.effWindow = f.windowLength
	f.fittedFH = fh
	f.fitted = true
	return nil
}

// Predict generates one value per offset sequentially, growing the working
// window with each generated prediction. The horizon must match the one seen
// at fit. Covariates passed here are ignored.
func (f *DirRecForecaster) Predict(fh *Horizon, _ *timeseries.Table) (*timeseries.Series, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}
	fh, err := f.resolveHorizon(fh)
	if err != nil {
		return nil, err
	}

	yLast, _ := window.LastWindow(f.y, nil, f.effWindow)
	if !window.Predictable(yLast, f.effWindow) {
		return f.nanForecast(fh), nil
	}

	full := window.NewTensor(1, 1, f.effWindow+fh.Len())
	for k, v := range yLast {
		full.Set(0, 0, k, v)
	}

	values := make([]float64, fh.Len())
	for i, est := range f.estimators {
		xPred := full.SliceLags(f.effWindow + i)
		pred, err := est.predict(xPred)
		if err != nil {
			return nil, err
		}
		values[i] = pred[0]
		full.Set(0, 0, f.effWindow+i, values[i])
	}
	return f.forecastSeries(fh, values), nil
}
