package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/timeseries"
	"github.com/sartorproj/goreduce/window"
)

// RecursiveForecaster reduces forecasting to regression using the recursive
// strategy: a single regressor is fitted for strict one-step-ahead
// prediction and applied iteratively, feeding each generated prediction back
// into the input window for the next step.
//
// The recursive strategy does not need the horizon at fit time, and supports
// panel data through FitPanel and PredictPanel.
type RecursiveForecaster struct {
	base
	estimator estimator

	panelY *timeseries.Panel
	panelX *timeseries.PanelTable
}

// Fit fits the one-step-ahead regressor. Regardless of the horizon used
// later at predict time, the sliding-window transform always uses a horizon
// of one step. fh may be nil; when given, it becomes the default horizon for
// Predict.
func (f *RecursiveForecaster) Fit(y *timeseries.Series, X *timeseries.Table, fh *Horizon) error {
	est := f.cloneEstimator()

	if f.summarizer != nil {
		targets, features, err := window.TransformSummarized(y, X, f.summarizer)
		if err != nil {
			return err
		}
		if err := est.tab.Fit(features, targets); err != nil {
			return err
		}
		f.effWindow = f.summarizer.TruncateStart()
	} else {
		if err := window.CheckWindowLength(f.windowLength, y.Len()); err != nil {
			return err
		}
		targets, features, err := window.Transform(y, X, f.windowLength, []int{1})
		if err != nil {
			return err
		}
		if err := est.fit(features, mat.Col(nil, 0, targets)); err != nil {
			return err
		}
		f.effWindow = f.windowLength
	}

	f.estimator = est
	f.y = y
	f.x = X
	f.panelY = nil
	f.panelX = nil
	f.fittedFH = fh
	f.fitted = true
	return nil
}

// FitPanel fits the one-step-ahead regressor on a panel of series. The
// sliding-window transform is applied to each instance independently and
// the resulting training rows are stacked. Covariates, when given, must
// provide a table for every instance. En-bloc features are not supported for
// panel data.
func (f *RecursiveForecaster) FitPanel(p *timeseries.Panel, X *timeseries.PanelTable, fh *Horizon) error {
	if f.summarizer != nil {
		return fmt.Errorf("en-bloc features are not supported for panel data")
	}
	if p.NumInstances() == 0 {
		return fmt.Errorf("panel has no instances")
	}

	var (
		tensors []*window.Tensor
		targets []float64
	)
	for _, key := range p.Keys() {
		s := p.Get(key)
		if err := window.CheckWindowLength(f.windowLength, s.Len()); err != nil {
			return fmt.Errorf("instance %q: %w", key, err)
		}
		var xt *timeseries.Table
		if X != nil {
			if xt = X.Get(key); xt == nil {
				return fmt.Errorf("instance %q: missing covariate table", key)
			}
		}
		yt, feat, err := window.Transform(s, xt, f.windowLength, []int{1})
		if err != nil {
			return fmt.Errorf("instance %q: %w", key, err)
		}
		tensors = append(tensors, feat)
		targets = append(targets, mat.Col(nil, 0, yt)...)
	}

	est := f.cloneEstimator()
	if err := est.fit(window.Stack(tensors...), targets); err != nil {
		return err
	}

	f.estimator = est
	f.y = nil
	f.x = nil
	f.panelY = p
	f.panelX = X
	f.effWindow = f.windowLength
	f.fittedFH = fh
	f.fitted = true
	return nil
}

// Predict iterates one-step-ahead predictions up to the furthest horizon
// offset and returns the requested subset of the generated steps. If the
// forecaster was fitted with covariates, X must supply their future values
// for at least Max(offset) steps past the cutoff.
func (f *RecursiveForecaster) Predict(fh *Horizon, X *timeseries.Table) (*timeseries.Series, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}
	if f.panelY != nil {
		return nil, fmt.Errorf("forecaster was fitted on panel data, use PredictPanel")
	}
	fh, err := f.defaultHorizon(fh)
	if err != nil {
		return nil, err
	}
	if f.x != nil && X == nil {
		return nil, fmt.Errorf("X must be passed to predict if X was given in fit")
	}
	if X != nil && X.Len() < fh.Max() {
		return nil, fmt.Errorf("X must cover %d future steps, has %d rows", fh.Max(), X.Len())
	}

	if f.summarizer != nil {
		return f.predictSummarized(fh, X)
	}

	frame := newForecastFrame(fh.Max())
	frame.addInstance(f.y.Name, f.y.Cutoff(), f.y.Freq())

	values, ok, err := f.predictSteps(f.y, f.x, X, fh.Max())
	if err != nil {
		return nil, err
	}
	if ok {
		for i, v := range values {
			frame.set(f.y.Name, i, v)
		}
	}
	return frame.series(f.y.Name, fh.Offsets()), nil
}

// PredictPanel runs the recursive loop for every panel instance
// independently and assembles a panel of forecasts replicating the input
// grouping.
func (f *RecursiveForecaster) PredictPanel(fh *Horizon, X *timeseries.PanelTable) (*timeseries.Panel, error) {
	if !f.fitted {
		return nil, ErrNotFitted
	}
	if f.panelY == nil {
		return nil, fmt.Errorf("forecaster was fitted on a single series, use Predict")
	}
	fh, err := f.defaultHorizon(fh)
	if err != nil {
		return nil, err
	}
	if f.panelX != nil && X == nil {
		return nil, fmt.Errorf("X must be passed to predict if X was given in fit")
	}

	frame := newForecastFrame(fh.Max())
	for _, key := range f.panelY.Keys() {
		s := f.panelY.Get(key)
		frame.addInstance(key, s.Cutoff(), s.Freq())

		var xHist, xFuture *timeseries.Table
		if f.panelX != nil {
			xHist = f.panelX.Get(key)
			if xFuture = X.Get(key); xFuture == nil {
				return nil, fmt.Errorf("instance %q: missing future covariates", key)
			}
			if xFuture.Len() < fh.Max() {
				return nil, fmt.Errorf("instance %q: X must cover %d future steps, has %d rows", key, fh.Max(), xFuture.Len())
			}
		}

		values, ok, err := f.predictSteps(s, xHist, xFuture, fh.Max())
		if err != nil {
			return nil, fmt.Errorf("instance %q: %w", key, err)
		}
		if ok {
			for i, v := range values {
				frame.set(key, i, v)
			}
		}
	}
	return frame.panel(fh.Offsets()), nil
}

// predictSteps runs the recursive loop for one series over a trailing
// buffer, generating exactly fhMax one-step predictions. The buffer holds
// the last window of observed values followed by slots for generated
// predictions; covariate future values come from xFuture. Returns ok=false
// when the last window is unpredictable.
func (f *RecursiveForecaster) predictSteps(y *timeseries.Series, xHist, xFuture *timeseries.Table, fhMax int) ([]float64, bool, error) {
	wl := f.effWindow
	yLast, xLast := window.LastWindow(y, xHist, wl)
	if !window.Predictable(yLast, wl) {
		return nil, false, nil
	}

	nVars := 1
	if xHist != nil {
		nVars += xHist.NumVars()
	}

	last := window.NewTensor(1, nVars, wl+fhMax)
	for k, v := range yLast {
		last.Set(0, 0, k, v)
	}
	if xLast != nil {
		for k := 0; k < wl; k++ {
			for j := 0; j < nVars-1; j++ {
				last.Set(0, 1+j, k, xLast.At(k, j))
			}
		}
		for i := 0; i < fhMax; i++ {
			for j := 0; j < nVars-1; j++ {
				last.Set(0, 1+j, wl+i, xFuture.At(i, j))
			}
		}
	}

	// Each step depends on all previous steps' outputs, so the loop is
	// strictly sequential.
	values := make([]float64, fhMax)
	for i := 0; i < fhMax; i++ {
		xPred := last.SliceLagRange(i, wl+i)
		pred, err := f.estimator.predict(xPred)
		if err != nil {
			return nil, false, err
		}
		values[i] = pred[0]
		last.Set(0, 0, wl+i, values[i])
	}
	return values, true, nil
}

// predictSummarized runs the recursive loop in en-bloc mode. Because
// derived features are not simple lags, each iteration regenerates the
// summarizer's features from the combined raw history and previously
// generated predictions instead of shifting a fixed-width buffer.
func (f *RecursiveForecaster) predictSummarized(fh *Horizon, X *timeseries.Table) (*timeseries.Series, error) {
	history := make([]float64, len(f.y.Values))
	copy(history, f.y.Values)

	featureRow := func(step int) []float64 {
		row := f.summarizer.FeatureRow(history)
		if f.x != nil {
			row = append(row, X.Row(step)...)
		}
		return row
	}

	// The predictability check in this mode tests the derived feature
	// row, not the raw window, since that is what feeds the regressor.
	if !window.Finite(featureRow(0)) {
		return f.nanForecast(fh), nil
	}

	frame := newForecastFrame(fh.Max())
	frame.addInstance(f.y.Name, f.y.Cutoff(), f.y.Freq())

	for i := 0; i < fh.Max(); i++ {
		row := featureRow(i)
		pred, err := f.estimator.tab.Predict(mat.NewDense(1, len(row), row))
		if err != nil {
			return nil, err
		}
		frame.set(f.y.Name, i, pred[0])
		history = append(history, pred[0])
	}
	return frame.series(f.y.Name, fh.Offsets()), nil
}
