package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goreduce/summarize"
	"github.com/sartorproj/goreduce/timeseries"
)

func ramp(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i)
	}
	return values
}

func TestTransformExplicit(t *testing.T) {
	y := timeseries.New(ramp(10))

	targets, features, err := Transform(y, nil, 3, []int{1, 2})
	require.NoError(t, err)

	rows, vars, lags := features.Dims()
	assert.Equal(t, 5, rows, "expected len - window - max(offset) windows")
	assert.Equal(t, 1, vars)
	assert.Equal(t, 3, lags)

	// First window: lagged values 0,1,2 predicting offsets 1 and 2 past
	// the window origin.
	assert.Equal(t, 0.0, features.At(0, 0, 0))
	assert.Equal(t, 2.0, features.At(0, 0, 2))
	assert.Equal(t, 3.0, targets.At(0, 0))
	assert.Equal(t, 4.0, targets.At(0, 1))

	// Last window.
	assert.Equal(t, 6.0, features.At(4, 0, 2))
	assert.Equal(t, 7.0, targets.At(4, 0))
	assert.Equal(t, 8.0, targets.At(4, 1))
}

func TestTransformRowCount(t *testing.T) {
	for _, tc := range []struct {
		length, window, maxOffset int
	}{
		{20, 5, 3},
		{50, 10, 1},
		{12, 2, 4},
	} {
		y := timeseries.New(ramp(tc.length))
		offsets := make([]int, tc.maxOffset)
		for i := range offsets {
			offsets[i] = i + 1
		}
		targets, _, err := Transform(y, nil, tc.window, offsets)
		require.NoError(t, err)
		rows, _ := targets.Dims()
		assert.Equal(t, tc.length-tc.window-tc.maxOffset, rows)
	}
}

func TestTransformNoLeakage(t *testing.T) {
	// With a monotonically increasing series, every feature value must be
	// strictly below every target value in the same row.
	y := timeseries.New(ramp(30))
	targets, features, err := Transform(y, nil, 6, []int{1, 3, 5})
	require.NoError(t, err)

	rows, vars, lags := features.Dims()
	_, nOffsets := targets.Dims()
	for r := 0; r < rows; r++ {
		featMax := math.Inf(-1)
		for v := 0; v < vars; v++ {
			for k := 0; k < lags; k++ {
				featMax = math.Max(featMax, features.At(r, v, k))
			}
		}
		targetMin := math.Inf(1)
		for j := 0; j < nOffsets; j++ {
			targetMin = math.Min(targetMin, targets.At(r, j))
		}
		assert.Less(t, featMax, targetMin, "leakage in row %d", r)
	}
}

func TestTransformWithCovariates(t *testing.T) {
	y := timeseries.New(ramp(10))
	cov := make([]float64, 10)
	for i := range cov {
		cov[i] = 100 + float64(i)
	}
	x, err := timeseries.NewTable(y.Timestamps, []string{"c"}, [][]float64{cov})
	require.NoError(t, err)

	targets, features, err := Transform(y, x, 3, []int{1})
	require.NoError(t, err)

	_, vars, _ := features.Dims()
	assert.Equal(t, 2, vars)

	// Covariate lags appear as a second variable; covariate future values
	// never appear in the targets.
	assert.Equal(t, 100.0, features.At(0, 1, 0))
	assert.Equal(t, 102.0, features.At(0, 1, 2))
	assert.Equal(t, 3.0, targets.At(0, 0))

	// Flattened layout: variable 0 lags, then variable 1 lags.
	m := features.Matrix()
	_, cols := m.Dims()
	assert.Equal(t, 6, cols)
	assert.Equal(t, []float64{0, 1, 2, 100, 101, 102}, []float64{
		m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3), m.At(0, 4), m.At(0, 5),
	})
}

func TestTransformIncompatible(t *testing.T) {
	y := timeseries.New(ramp(10))

	_, _, err := Transform(y, nil, 5, []int{5})
	assert.ErrorIs(t, err, ErrIncompatible)

	_, _, err = Transform(y, nil, 8, []int{2})
	assert.ErrorIs(t, err, ErrIncompatible)

	// One observation more than window + max(offset) is enough.
	y = timeseries.New(ramp(11))
	_, _, err = Transform(y, nil, 5, []int{5})
	assert.NoError(t, err)
}

func TestTransformBadWindowLength(t *testing.T) {
	y := timeseries.New(ramp(10))

	_, _, err := Transform(y, nil, 0, []int{1})
	assert.Error(t, err)

	_, _, err = Transform(y, nil, 11, []int{1})
	assert.Error(t, err)
}

func TestTransformSummarized(t *testing.T) {
	y := timeseries.New(ramp(10))
	s := summarize.New(summarize.Feature{Func: summarize.FuncLag, Lag: 1})

	targets, features, err := TransformSummarized(y, nil, s)
	require.NoError(t, err)

	assert.Equal(t, 1, s.TruncateStart())
	assert.Len(t, targets, 9)

	rows, cols := features.Dims()
	assert.Equal(t, 9, rows)
	assert.Equal(t, 1, cols)

	// Target at row r is y[r+1]; its lag-1 feature is y[r].
	for r := 0; r < rows; r++ {
		assert.Equal(t, float64(r+1), targets[r])
		assert.Equal(t, float64(r), features.At(r, 0))
	}
}

func TestLastWindow(t *testing.T) {
	y := timeseries.New(ramp(10))
	cov := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	x, err := timeseries.NewTable(y.Timestamps, []string{"c"}, [][]float64{cov})
	require.NoError(t, err)

	yWin, xWin := LastWindow(y, x, 3)
	assert.Equal(t, []float64{7, 8, 9}, yWin)

	rows, cols := xWin.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 17.0, xWin.At(0, 0))
	assert.Equal(t, 19.0, xWin.At(2, 0))

	yWin, xWin = LastWindow(y, nil, 3)
	assert.Nil(t, xWin)
	assert.Len(t, yWin, 3)
}

func TestPredictable(t *testing.T) {
	assert.True(t, Predictable([]float64{1, 2, 3}, 3))
	assert.False(t, Predictable([]float64{1, 2}, 3), "short window")
	assert.False(t, Predictable([]float64{1, math.NaN(), 3}, 3), "missing value")
	assert.False(t, Predictable([]float64{1, math.Inf(1), 3}, 3), "infinite value")
}

func TestTensorSliceAndStack(t *testing.T) {
	a := NewTensor(1, 1, 4)
	for k := 0; k < 4; k++ {
		a.Set(0, 0, k, float64(k))
	}

	mid := a.SliceLagRange(1, 3)
	_, _, lags := mid.Dims()
	assert.Equal(t, 2, lags)
	assert.Equal(t, 1.0, mid.At(0, 0, 0))
	assert.Equal(t, 2.0, mid.At(0, 0, 1))

	b := NewTensor(2, 1, 4)
	b.Set(1, 0, 3, 9)
	stacked := Stack(a, b)
	rows, _, _ := stacked.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3.0, stacked.At(0, 0, 3))
	assert.Equal(t, 9.0, stacked.At(2, 0, 3))
}
