// Package reduce implements forecasting by reduction to supervised
// regression.
package reduce

import (
	"fmt"

	"github.com/sartorproj/goreduce/regression"
	"github.com/sartorproj/goreduce/summarize"
	"github.com/sartorproj/goreduce/timeseries"
)

// Strategy selects how fitted regressors are combined into multi-step
// forecasts.
type Strategy string

const (
	// StrategyDirect fits one regressor per horizon offset.
	StrategyDirect Strategy = "direct"
	// StrategyRecursive fits one one-step regressor and applies it
	// iteratively, feeding back its own predictions.
	StrategyRecursive Strategy = "recursive"
	// StrategyMultioutput fits one regressor producing all horizon
	// offsets simultaneously.
	StrategyMultioutput Strategy = "multioutput"
	// StrategyDirRec fits one regressor per offset on an expanding
	// feature set that includes prior offsets' predictions.
	StrategyDirRec Strategy = "dirrec"
)

// SciType identifies the kind of regression estimator being reduced to.
type SciType string

const (
	// SciTypeInfer derives the scitype from the estimator's contract.
	SciTypeInfer SciType = "infer"
	// SciTypeTabular reduces to flat feature-matrix regression.
	SciTypeTabular SciType = "tabular-regressor"
	// SciTypeTimeSeries reduces to 3-D window-tensor regression.
	SciTypeTimeSeries SciType = "time-series-regressor"
)

// Forecaster is the common contract of all reduction forecasters. Fit
// transforms the series with a sliding window and fits the regressor(s);
// Predict assembles multi-step forecasts from the most recent window.
//
// X carries optional exogenous covariates. At predict time, X supplies the
// covariate values for the future steps where a strategy needs them
// (recursive); pass nil otherwise.
type Forecaster interface {
	Fit(y *timeseries.Series, X *timeseries.Table, fh *Horizon) error
	Predict(fh *Horizon, X *timeseries.Table) (*timeseries.Series, error)
}

// Config holds reduction forecaster configuration.
type Config struct {
	// Strategy to combine regressors into forecasts (default: recursive).
	Strategy Strategy
	// WindowLength for the sliding-window transform (default: 10).
	// Mutually exclusive with Summarizer, which infers it.
	WindowLength int
	// SciType of the estimator (default: infer from its contract).
	SciType SciType
	// Summarizer enables the en-bloc mode, deriving feature columns from
	// the raw series instead of fixed-width lagged windows. Recursive
	// strategy only.
	Summarizer *summarize.WindowSummarizer
}

// DefaultConfig returns the default reduction configuration.
func DefaultConfig() *Config {
	return &Config{
		Strategy:     StrategyRecursive,
		WindowLength: 10,
		SciType:      SciTypeInfer,
	}
}

// MakeReduction creates a forecaster based on reduction to tabular or
// time-series regression. During fitting, a sliding-window approach
// transforms the series into regression matrices, which are used to fit the
// estimator. During prediction, the last available window is used as input
// to generate forecasts.
//
// The estimator must satisfy regression.Regressor (tabular) or
// regression.TimeSeriesRegressor.
func MakeReduction(est any, cfg *Config) (Forecaster, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := checkStrategy(cfg.Strategy); err != nil {
		return nil, err
	}
	sciType, err := checkSciType(cfg.SciType)
	if err != nil {
		return nil, err
	}
	if sciType == SciTypeInfer {
		sciType, err = inferSciType(est)
		if err != nil {
			return nil, err
		}
	}

	b := base{sciType: sciType, windowLength: cfg.WindowLength, summarizer: cfg.Summarizer}
	switch sciType {
	case SciTypeTimeSeries:
		ts, ok := est.(regression.TimeSeriesRegressor)
		if !ok {
			return nil, fmt.Errorf("estimator does not satisfy the time-series regressor contract")
		}
		b.tsEst = ts
	case SciTypeTabular:
		tab, ok := est.(regression.Regressor)
		if !ok {
			return nil, fmt.Errorf("estimator does not satisfy the tabular regressor contract")
		}
		b.tabEst = tab
	}

	if cfg.Summarizer != nil {
		if cfg.Strategy != StrategyRecursive {
			return nil, fmt.Errorf("en-bloc features are only supported by the recursive strategy, got %q", cfg.Strategy)
		}
		if sciType != SciTypeTabular {
			return nil, fmt.Errorf("en-bloc features require a tabular regressor")
		}
		if cfg.WindowLength != 0 {
			return nil, fmt.Errorf("summarizer provided, suggesting en-bloc feature derivation; window length will be inferred, set WindowLength to 0")
		}
	} else if b.windowLength == 0 {
		b.windowLength = DefaultConfig().WindowLength
	}

	switch cfg.Strategy {
	case StrategyDirect:
		return &DirectForecaster{base: b}, nil
	case StrategyRecursive:
		return &RecursiveForecaster{base: b}, nil
	case StrategyMultioutput:
		return &MultioutputForecaster{base: b}, nil
	case StrategyDirRec:
		return &DirRecForecaster{base: b}, nil
	}
	panic("unreachable")
}

func checkStrategy(s Strategy) error {
	switch s {
	case StrategyDirect, StrategyRecursive, StrategyMultioutput, StrategyDirRec:
		return nil
	}
	return fmt.Errorf("invalid strategy %q, must be one of: direct, recursive, multioutput, dirrec", s)
}

func checkSciType(s SciType) (SciType, error) {
	switch s {
	case "":
		return SciTypeInfer, nil
	case SciTypeInfer, SciTypeTabular, SciTypeTimeSeries:
		return s, nil
	}
	return "", fmt.Errorf("invalid scitype %q, must be one of: infer, tabular-regressor, time-series-regressor", s)
}

// inferSciType inspects the estimator's contract. Some time-series
// regressors also satisfy the tabular contract, so the time-series check
// comes first.
func inferSciType(est any) (SciType, error) {
	if _, ok := est.(regression.TimeSeriesRegressor); ok {
		return SciTypeTimeSeries, nil
	}
	if _, ok := est.(regression.Regressor); ok {
		return SciTypeTabular, nil
	}
	return "", fmt.Errorf("the scitype of the given estimator cannot be inferred, please specify it explicitly")
}
