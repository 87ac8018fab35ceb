// Package main demonstrates reduction forecasting with all four strategies.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/sartorproj/goreduce/reduce"
	"github.com/sartorproj/goreduce/regression"
	"github.com/sartorproj/goreduce/stats"
	"github.com/sartorproj/goreduce/summarize"
	"github.com/sartorproj/goreduce/timeseries"
)

const (
	nObs    = 200
	nTest   = 12
	winLen  = 24
	seasonM = 12
)

// syntheticSeries generates a trend plus seasonal pattern with a small
// deterministic perturbation.
func syntheticSeries(n int) []float64 {
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		trend := 100 + 0.5*float64(i)
		seasonal := 10 * math.Sin(2*math.Pi*float64(i)/float64(seasonM))
		noise := float64(i%7-3) / 2
		values[i] = trend + seasonal + noise
	}
	return values
}

func runStrategy(name string, strategy reduce.Strategy, train *timeseries.Series, test []float64) {
	f, err := reduce.MakeReduction(regression.NewLinearRegression(), &reduce.Config{
		Strategy:     strategy,
		WindowLength: winLen,
	})
	if err != nil {
		fmt.Printf("%-12s error: %v\n", name, err)
		return
	}

	offsets := make([]int, nTest)
	for i := range offsets {
		offsets[i] = i + 1
	}
	fh, err := reduce.NewHorizon(offsets...)
	if err != nil {
		fmt.Printf("%-12s error: %v\n", name, err)
		return
	}

	if err := f.Fit(train, nil, fh); err != nil {
		fmt.Printf("%-12s fit error: %v\n", name, err)
		return
	}
	forecast, err := f.Predict(fh, nil)
	if err != nil {
		fmt.Printf("%-12s predict error: %v\n", name, err)
		return
	}

	m, err := stats.Evaluate(test, forecast.Values)
	if err != nil {
		fmt.Printf("%-12s eval error: %v\n", name, err)
		return
	}
	fmt.Printf("%-12s MAE=%7.3f  RMSE=%7.3f  MAPE=%5.2f%%  R2=%6.3f\n",
		name, m.MAE, m.RMSE, m.MAPE, m.R2)
}

func runSummarized(train *timeseries.Series, test []float64) {
	s := summarize.New(
		summarize.Feature{Func: summarize.FuncLag, Lag: 1},
		summarize.Feature{Func: summarize.FuncLag, Lag: seasonM},
		summarize.Feature{Func: summarize.FuncMean, Lag: 1, Window: seasonM},
	)
	f, err := reduce.MakeReduction(regression.NewLinearRegression(), &reduce.Config{
		Strategy:   reduce.StrategyRecursive,
		Summarizer: s,
	})
	if err != nil {
		fmt.Printf("%-12s error: %v\n", "en-bloc", err)
		return
	}
	if err := f.Fit(train, nil, nil); err != nil {
		fmt.Printf("%-12s fit error: %v\n", "en-bloc", err)
		return
	}

	offsets := make([]int, nTest)
	for i := range offsets {
		offsets[i] = i + 1
	}
	fh, _ := reduce.NewHorizon(offsets...)
	forecast, err := f.Predict(fh, nil)
	if err != nil {
		fmt.Printf("%-12s predict error: %v\n", "en-bloc", err)
		return
	}
	m, _ := stats.Evaluate(test, forecast.Values)
	fmt.Printf("%-12s MAE=%7.3f  RMSE=%7.3f  MAPE=%5.2f%%  R2=%6.3f\n",
		"en-bloc", m.MAE, m.RMSE, m.MAPE, m.R2)
}

func runPanel() {
	panel := timeseries.NewPanel()
	for i, key := range []string{"store_1", "store_2", "store_3"} {
		values := syntheticSeries(nObs)
		for j := range values {
			values[j] *= 1 + 0.2*float64(i)
		}
		if err := panel.Add(key, timeseries.New(values)); err != nil {
			fmt.Println("panel error:", err)
			return
		}
	}

	f, err := reduce.MakeReduction(regression.NewLinearRegression(), &reduce.Config{
		Strategy:     reduce.StrategyRecursive,
		WindowLength: winLen,
	})
	if err != nil {
		fmt.Println("panel error:", err)
		return
	}
	rec := f.(*reduce.RecursiveForecaster)
	if err := rec.FitPanel(panel, nil, nil); err != nil {
		fmt.Println("panel fit error:", err)
		return
	}

	fh, _ := reduce.NewHorizon(1, 2, 3)
	forecasts, err := rec.PredictPanel(fh, nil)
	if err != nil {
		fmt.Println("panel predict error:", err)
		return
	}
	for _, key := range forecasts.Keys() {
		fmt.Printf("%-12s %v\n", key, round3(forecasts.Get(key).Values))
	}
}

func round3(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*1000) / 1000
	}
	return out
}

func main() {
	values := syntheticSeries(nObs)
	train := timeseries.New(values[:nObs-nTest])
	test := values[nObs-nTest:]

	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("Reduction forecasting: linear regressor, all strategies")
	fmt.Printf("train=%d obs  test=%d obs  window=%d\n", train.Len(), nTest, winLen)
	fmt.Println(strings.Repeat("=", 72))

	runStrategy("direct", reduce.StrategyDirect, train, test)
	runStrategy("recursive", reduce.StrategyRecursive, train, test)
	runStrategy("multioutput", reduce.StrategyMultioutput, train, test)
	runStrategy("dirrec", reduce.StrategyDirRec, train, test)
	runSummarized(train, test)

	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("Panel forecasting: recursive strategy, three instances")
	fmt.Println(strings.Repeat("=", 72))
	runPanel()
}
