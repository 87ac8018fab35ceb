package reduce

import (
	"math"
	"time"

	"github.com/sartorproj/goreduce/timeseries"
)

// forecastFrame is a NaN-initialized prediction container shaped like the
// input data: one row of future steps per instance, indexed from each
// instance's cutoff at its own frequency. The recursive loop splices newly
// generated predictions into the frame step by step; afterwards the frame is
// filtered down to exactly the requested horizon offsets.
type forecastFrame struct {
	steps  int
	keys   []string
	origin map[string]time.Time
	freq   map[string]time.Duration
	vals   map[string][]float64
}

func newForecastFrame(steps int) *forecastFrame {
	return &forecastFrame{
		steps:  steps,
		origin: make(map[string]time.Time),
		freq:   make(map[string]time.Duration),
		vals:   make(map[string][]float64),
	}
}

// addInstance registers an instance, pre-filling its future steps with NaN.
// Optional fill values overwrite the leading steps.
func (f *forecastFrame) addInstance(key string, origin time.Time, freq time.Duration, fill ...float64) {
	vals := make([]float64, f.steps)
	for i := range vals {
		vals[i] = math.NaN()
	}
	copy(vals, fill)
	f.keys = append(f.keys, key)
	f.origin[key] = origin
	f.freq[key] = freq
	f.vals[key] = vals
}

// set overwrites the prediction at the given step (0-based) for an instance.
func (f *forecastFrame) set(key string, step int, v float64) {
	f.vals[key][step] = v
}

// series filters one instance down to the requested offsets, preserving the
// instance's frequency in the output timestamps.
func (f *forecastFrame) series(key string, offsets []int) *timeseries.Series {
	timestamps := make([]time.Time, len(offsets))
	values := make([]float64, len(offsets))
	for i, o := range offsets {
		timestamps[i] = f.origin[key].Add(time.Duration(o) * f.freq[key])
		values[i] = f.vals[key][o-1]
	}
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       key,
	}
}

// panel filters every instance down to the requested offsets, replicating
// the original instance grouping and order.
func (f *forecastFrame) panel(offsets []int) *timeseries.Panel {
	out := timeseries.NewPanel()
	for _, key := range f.keys {
		// Keys are unique by construction.
		_ = out.Add(key, f.series(key, offsets))
	}
	return out
}
