// Package window implements the sliding-window transform that turns a time
// series into aligned feature and target matrices for supervised regression.
package window

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/summarize"
	"github.com/sartorproj/goreduce/timeseries"
)

// ErrIncompatible is returned when the window length and horizon together
// reach past the end of the series, leaving no full training windows.
var ErrIncompatible = errors.New("window length and horizon are incompatible with the series length")

// CheckWindowLength validates a window length against the series length.
func CheckWindowLength(windowLength, nTimepoints int) error {
	if windowLength < 1 {
		return fmt.Errorf("window length must be a positive integer, got %d", windowLength)
	}
	if windowLength > nTimepoints {
		return fmt.Errorf("window length %d exceeds series length %d", windowLength, nTimepoints)
	}
	return nil
}

// Transform converts a series and optional covariates into aligned training
// matrices using a sliding window. Offsets are the strictly positive horizon
// steps, sorted ascending. The returned targets matrix has one column per
// offset, holding future values of the primary series only; covariate future
// values are never exposed. The feature tensor holds the windowLength lagged
// values of the series and every covariate, excluding the target time points.
//
// The number of windows is len(y) - windowLength - max(offset). Transform
// fails with ErrIncompatible when that count is not positive.
func Transform(y *timeseries.Series, X *timeseries.Table, windowLength int, offsets []int) (*mat.Dense, *Tensor, error) {
	nTimepoints := y.Len()
	if err := CheckWindowLength(windowLength, nTimepoints); err != nil {
		return nil, nil, err
	}
	if len(offsets) == 0 {
		return nil, nil, errors.New("at least one horizon offset is required")
	}
	if X != nil && X.Len() != nTimepoints {
		return nil, nil, fmt.Errorf("covariates have %d rows, series has %d", X.Len(), nTimepoints)
	}

	nVars := 1
	if X != nil {
		nVars += X.NumVars()
	}

	// Column-wise concatenation of the series and covariates.
	z := make([][]float64, nTimepoints)
	for t := 0; t < nTimepoints; t++ {
		z[t] = make([]float64, nVars)
		z[t][0] = y.Values[t]
		if X != nil {
			for j := 0; j < X.NumVars(); j++ {
				z[t][1+j] = X.At(t, j)
			}
		}
	}

	maxOffset := offsets[len(offsets)-1]
	effective := windowLength + maxOffset
	if effective >= nTimepoints {
		return nil, nil, ErrIncompatible
	}

	// Pre-allocate a padded buffer and fill it by iterating over the shifts.
	// Slice k of the buffer is the concatenated matrix shifted by
	// effective-k rows, which materializes every contiguous window of
	// length effective+1 in one pass.
	padded := NewTensor(nTimepoints+effective, nVars, effective+1)
	for k := 0; k <= effective; k++ {
		i := effective - k
		for t := 0; t < nTimepoints; t++ {
			for v := 0; v < nVars; v++ {
				padded.Set(i+t, v, k, z[t][v])
			}
		}
	}

	// Keep only fully populated windows, discarding incomplete ones at
	// both ends of the padded buffer.
	nWindows := nTimepoints - effective

	targets := mat.NewDense(nWindows, len(offsets), nil)
	features := NewTensor(nWindows, nVars, windowLength)

	for r := 0; r < nWindows; r++ {
		// The padded buffer's first effective rows hold incomplete
		// windows; full window r starts at padded row r+effective.
		row := r + effective
		for j, offset := range offsets {
			targets.Set(r, j, padded.At(row, 0, windowLength+offset-1))
		}
		for v := 0; v < nVars; v++ {
			for k := 0; k < windowLength; k++ {
				features.Set(r, v, k, padded.At(row, v, k))
			}
		}
	}

	return targets, features, nil
}

// TransformSummarized converts a series into training data using an
// auxiliary feature-generating transform instead of raw lagged windows. The
// summarizer's startup truncation is applied uniformly to targets, derived
// features, and covariates so all rows stay aligned. Targets are strictly
// one-step-ahead: the derived features at row t only use observations before
// t, per the summarizer's lag configuration.
func TransformSummarized(y *timeseries.Series, X *timeseries.Table, s *summarize.WindowSummarizer) ([]float64, *mat.Dense, error) {
	if err := s.Fit(y); err != nil {
		return nil, nil, err
	}
	truncate := s.TruncateStart()

	nTimepoints := y.Len()
	if truncate >= nTimepoints {
		return nil, nil, ErrIncompatible
	}
	if X != nil && X.Len() != nTimepoints {
		return nil, nil, fmt.Errorf("covariates have %d rows, series has %d", X.Len(), nTimepoints)
	}

	derived, err := s.Transform(y)
	if err != nil {
		return nil, nil, err
	}

	nRows := nTimepoints - truncate
	nCols := derived.NumVars()
	if X != nil {
		nCols += X.NumVars()
	}

	targets := make([]float64, nRows)
	features := mat.NewDense(nRows, nCols, nil)
	for r := 0; r < nRows; r++ {
		t := r + truncate
		targets[r] = y.Values[t]
		row := derived.Row(t)
		if X != nil {
			row = append(row, X.Row(t)...)
		}
		features.SetRow(r, row)
	}
	return targets, features, nil
}
