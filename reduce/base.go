package reduce

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/regression"
	"github.com/sartorproj/goreduce/summarize"
	"github.com/sartorproj/goreduce/timeseries"
	"github.com/sartorproj/goreduce/window"
)

// estimator unifies the tabular and time-series regressor contracts so the
// strategies can treat fitted instances uniformly. Exactly one field is set.
type estimator struct {
	tab regression.Regressor
	ts  regression.TimeSeriesRegressor
}

func (e estimator) fit(X *window.Tensor, y []float64) error {
	if e.ts != nil {
		return e.ts.FitWindows(X, y)
	}
	return e.tab.Fit(X.Matrix(), y)
}

func (e estimator) predict(X *window.Tensor) ([]float64, error) {
	if e.ts != nil {
		return e.ts.PredictWindows(X)
	}
	return e.tab.Predict(X.Matrix())
}

// base holds the configuration and fitted state shared by all strategies.
type base struct {
	sciType      SciType
	tabEst       regression.Regressor
	tsEst        regression.TimeSeriesRegressor
	windowLength int
	summarizer   *summarize.WindowSummarizer

	y         *timeseries.Series
	x         *timeseries.Table
	effWindow int // effective window length, possibly inferred
	fittedFH  *Horizon
	fitted    bool
}

// cloneEstimator returns an unfitted copy of the configured estimator. Each
// strategy clones before fitting, so a forecaster exclusively owns its
// regressor instances.
func (b *base) cloneEstimator() estimator {
	if b.tsEst != nil {
		return estimator{ts: b.tsEst.CloneTimeSeries()}
	}
	return estimator{tab: b.tabEst.Clone()}
}

func (b *base) numVars() int {
	if b.x == nil {
		return 1
	}
	return 1 + b.x.NumVars()
}

// resolveHorizon checks the horizon requested at predict time against the
// one seen at fit. Strategies that fit one estimator per step can only serve
// the exact horizon they were fitted for.
func (b *base) resolveHorizon(fh *Horizon) (*Horizon, error) {
	if fh == nil {
		if b.fittedFH == nil {
			return nil, fmt.Errorf("forecasting horizon must be provided to predict")
		}
		return b.fittedFH, nil
	}
	if b.fittedFH != nil && !b.fittedFH.Equal(fh) {
		return nil, fmt.Errorf("forecasting horizon %v differs from the one seen at fit %v", fh, b.fittedFH)
	}
	return fh, nil
}

// defaultHorizon falls back to the horizon seen at fit when none is given.
// Unlike resolveHorizon it does not require the two to match; the recursive
// strategy serves any out-of-sample horizon from its one-step regressor.
func (b *base) defaultHorizon(fh *Horizon) (*Horizon, error) {
	if fh == nil {
		if b.fittedFH == nil {
			return nil, fmt.Errorf("forecasting horizon must be provided to predict")
		}
		return b.fittedFH, nil
	}
	return fh, nil
}

// forecastSeries builds the output series for the requested offsets,
// anchored at the cutoff and preserving the input frequency.
func (b *base) forecastSeries(fh *Horizon, values []float64) *timeseries.Series {
	cutoff := b.y.Cutoff()
	freq := b.y.Freq()
	timestamps := make([]time.Time, fh.Len())
	for i, o := range fh.Offsets() {
		timestamps[i] = cutoff.Add(time.Duration(o) * freq)
	}
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       b.y.Name,
	}
}

// nanForecast is the designed fallback for unpredictable last windows: an
// all-NaN forecast of the requested length instead of an error, so
// downstream pipelines can continue.
func (b *base) nanForecast(fh *Horizon) *timeseries.Series {
	values := make([]float64, fh.Len())
	for i := range values {
		values[i] = math.NaN()
	}
	return b.forecastSeries(fh, values)
}

// lastWindowTensor assembles the single prediction input window from the
// trailing observations of the series and covariates, matching the variable
// and lag layout used at fit time.
func (b *base) lastWindowTensor(yLast []float64, xLast *mat.Dense) *window.Tensor {
	t := window.NewTensor(1, b.numVars(), b.effWindow)
	for k, v := range yLast {
		t.Set(0, 0, k, v)
	}
	if xLast != nil {
		rows, cols := xLast.Dims()
		for k := 0; k < rows; k++ {
			for j := 0; j < cols; j++ {
				t.Set(0, 1+j, k, xLast.At(k, j))
			}
		}
	}
	return t
}
