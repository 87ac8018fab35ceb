// Package summarize derives rolling summary features from a raw time series.
package summarize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goreduce/timeseries"
)

// Supported summary functions.
const (
	FuncLag  = "lag"
	FuncMean = "mean"
	FuncStd  = "std"
	FuncMin  = "min"
	FuncMax  = "max"
	FuncSum  = "sum"
)

// Feature specifies one derived column: a summary function applied over a
// trailing window of the series, shifted back by Lag steps. Lag must be at
// least 1 so derived features never see the value they help predict.
type Feature struct {
	Func   string
	Lag    int
	Window int // ignored for FuncLag
}

func (f Feature) name() string {
	if f.Func == FuncLag {
		return fmt.Sprintf("lag_%d", f.Lag)
	}
	return fmt.Sprintf("%s_%d_%d", f.Func, f.Lag, f.Window)
}

// startup returns the number of leading rows for which the feature cannot be
// computed.
func (f Feature) startup() int {
	if f.Func == FuncLag {
		return f.Lag
	}
	return f.Lag + f.Window - 1
}

// WindowSummarizer generates feature columns from the raw past observations
// of a series, as an alternative to fixed-width lagged windows. It must be
// fitted before use; fitting determines TruncateStart, the uniform startup
// truncation applied to keep derived features, targets and covariates
// aligned.
type WindowSummarizer struct {
	Features []Feature

	truncate int
	fitted   bool
}

// New creates a summarizer from feature specifications.
func New(features ...Feature) *WindowSummarizer {
	return &WindowSummarizer{Features: features}
}

// Fit validates the feature specifications against the series and computes
// the startup truncation.
func (s *WindowSummarizer) Fit(y *timeseries.Series) error {
	if len(s.Features) == 0 {
		return errors.New("summarizer requires at least one feature")
	}

	truncate := 0
	for _, f := range s.Features {
		switch f.Func {
		case FuncLag:
		case FuncMean, FuncStd, FuncMin, FuncMax, FuncSum:
			if f.Window < 1 {
				return fmt.Errorf("feature %q: window must be at least 1", f.Func)
			}
		default:
			return fmt.Errorf("unknown summary function %q", f.Func)
		}
		if f.Lag < 1 {
			return fmt.Errorf("feature %q: lag must be at least 1", f.Func)
		}
		if su := f.startup(); su > truncate {
			truncate = su
		}
	}
	if truncate >= y.Len() {
		return fmt.Errorf("summarizer needs %d startup observations, series has %d", truncate, y.Len())
	}

	s.truncate = truncate
	s.fitted = true
	return nil
}

// TruncateStart returns the number of leading rows that must be discarded
// before all derived features are defined. Valid after Fit.
func (s *WindowSummarizer) TruncateStart() int {
	return s.truncate
}

// Fitted reports whether the summarizer has been fitted.
func (s *WindowSummarizer) Fitted() bool {
	return s.fitted
}

// Transform derives the feature columns for every row of the series. Rows
// within the startup period hold NaN. The returned table has the same length
// and timestamps as the input.
func (s *WindowSummarizer) Transform(y *timeseries.Series) (*timeseries.Table, error) {
	if !s.fitted {
		return nil, errors.New("summarizer must be fitted before transform")
	}

	names := make([]string, len(s.Features))
	columns := make([][]float64, len(s.Features))
	for j, f := range s.Features {
		names[j] = f.name()
		columns[j] = make([]float64, y.Len())
		for t := 0; t < y.Len(); t++ {
			columns[j][t] = f.apply(y.Values[:t])
		}
	}
	return timeseries.NewTable(y.Timestamps, names, columns)
}

// FeatureRow derives the feature vector for the time point immediately after
// the given history. The recursive strategy uses this to regenerate features
// from raw history plus previously generated predictions at every step.
func (s *WindowSummarizer) FeatureRow(history []float64) []float64 {
	row := make([]float64, len(s.Features))
	for j, f := range s.Features {
		row[j] = f.apply(history)
	}
	return row
}

// apply computes the feature for the position just past the end of history.
func (f Feature) apply(history []float64) float64 {
	n := len(history)
	if n < f.startup() {
		return math.NaN()
	}
	if f.Func == FuncLag {
		return history[n-f.Lag]
	}

	win := history[n-f.Lag-f.Window+1 : n-f.Lag+1]
	switch f.Func {
	case FuncMean:
		return stat.Mean(win, nil)
	case FuncStd:
		if len(win) < 2 {
			return 0
		}
		return stat.StdDev(win, nil)
	case FuncMin:
		return floats.Min(win)
	case FuncMax:
		return floats.Max(win)
	case FuncSum:
		return floats.Sum(win)
	}
	return math.NaN()
}
