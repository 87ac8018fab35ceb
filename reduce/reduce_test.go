package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goreduce/regression"
	"github.com/sartorproj/goreduce/summarize"
)

func TestMakeReductionDefaults(t *testing.T) {
	f, err := MakeReduction(regression.NewLinearRegression(), nil)
	require.NoError(t, err)

	r, ok := f.(*RecursiveForecaster)
	require.True(t, ok, "default strategy is recursive")
	assert.Equal(t, 10, r.windowLength)
	assert.Equal(t, SciTypeTabular, r.sciType)
}

func TestMakeReductionStrategies(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     any
	}{
		{StrategyDirect, &DirectForecaster{}},
		{StrategyRecursive, &RecursiveForecaster{}},
		{StrategyMultioutput, &MultioutputForecaster{}},
		{StrategyDirRec, &DirRecForecaster{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			f, err := MakeReduction(regression.NewLinearRegression(), &Config{
				Strategy:     tt.strategy,
				WindowLength: 5,
			})
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestMakeReductionInvalidStrategy(t *testing.T) {
	_, err := MakeReduction(regression.NewLinearRegression(), &Config{Strategy: "directrec"})
	assert.Error(t, err)
}

func TestMakeReductionInvalidSciType(t *testing.T) {
	_, err := MakeReduction(regression.NewLinearRegression(), &Config{
		Strategy: StrategyRecursive,
		SciType:  "classifier",
	})
	assert.Error(t, err)
}

func TestMakeReductionSciTypeInference(t *testing.T) {
	// A plain tabular regressor infers to the tabular scitype.
	f, err := MakeReduction(regression.NewMeanRegressor(), &Config{Strategy: StrategyRecursive})
	require.NoError(t, err)
	assert.Equal(t, SciTypeTabular, f.(*RecursiveForecaster).sciType)

	// A tabularizer satisfies the time-series contract, which wins.
	f, err = MakeReduction(regression.NewTabularizer(regression.NewLinearRegression()), &Config{
		Strategy: StrategyRecursive,
	})
	require.NoError(t, err)
	assert.Equal(t, SciTypeTimeSeries, f.(*RecursiveForecaster).sciType)

	// Anything else cannot be inferred.
	_, err = MakeReduction(struct{}{}, &Config{Strategy: StrategyRecursive})
	assert.Error(t, err)
}

func TestMakeReductionContractMismatch(t *testing.T) {
	// Forcing the time-series scitype on a tabular-only estimator fails.
	_, err := MakeReduction(regression.NewLinearRegression(), &Config{
		Strategy: StrategyRecursive,
		SciType:  SciTypeTimeSeries,
	})
	assert.Error(t, err)
}

func TestMakeReductionSummarizerConstraints(t *testing.T) {
	s := summarize.New(summarize.Feature{Func: summarize.FuncLag, Lag: 1})

	_, err := MakeReduction(regression.NewLinearRegression(), &Config{
		Strategy:   StrategyDirect,
		Summarizer: s,
	})
	assert.Error(t, err, "en-bloc is recursive only")

	_, err = MakeReduction(regression.NewTabularizer(regression.NewLinearRegression()), &Config{
		Strategy:   StrategyRecursive,
		Summarizer: s,
	})
	assert.Error(t, err, "en-bloc needs a tabular regressor")

	_, err = MakeReduction(regression.NewLinearRegression(), &Config{
		Strategy:     StrategyRecursive,
		WindowLength: 5,
		Summarizer:   s,
	})
	assert.Error(t, err, "window length is inferred from the summarizer")

	_, err = MakeReduction(regression.NewLinearRegression(), &Config{
		Strategy:   StrategyRecursive,
		Summarizer: s,
	})
	assert.NoError(t, err)
}
