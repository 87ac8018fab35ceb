// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// Series represents a univariate time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values with synthetic hourly timestamps.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, errors.New("timestamps must be unique and sorted")
		}
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Cutoff returns the last observed time point of the series.
func (s *Series) Cutoff() time.Time {
	if len(s.Timestamps) == 0 {
		return time.Time{}
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// Freq returns the sampling interval inferred from the first two timestamps,
// or zero if the series is too short to tell.
func (s *Series) Freq() time.Duration {
	if len(s.Timestamps) < 2 {
		return 0
	}
	return s.Timestamps[1].Sub(s.Timestamps[0])
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// LastN returns the values of the trailing n observations. If the series is
// shorter than n, all values are returned.
func (s *Series) LastN(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n > len(s.Values) {
		n = len(s.Values)
	}
	out := make([]float64, n)
	copy(out, s.Values[len(s.Values)-n:])
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Append adds a value one sampling interval past the current cutoff.
func (s *Series) Append(v float64) {
	next := s.Cutoff().Add(s.Freq())
	s.Timestamps = append(s.Timestamps, next)
	s.Values = append(s.Values, v)
}

// IsFinite reports whether the series contains no NaN or infinite values.
func (s *Series) IsFinite() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
