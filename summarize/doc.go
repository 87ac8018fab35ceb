// Package summarize generates rolling summary features from raw time series
// observations.
//
// A WindowSummarizer replaces fixed-width lagged windows with derived
// feature columns such as lags and rolling means:
//
//	s := summarize.New(
//	    summarize.Feature{Func: summarize.FuncLag, Lag: 1},
//	    summarize.Feature{Func: summarize.FuncMean, Lag: 1, Window: 7},
//	)
//	s.Fit(series)
//	features, err := s.Transform(series)
//
// Every feature is shifted back by at least one step, so the derived value
// at row t only depends on observations strictly before t. TruncateStart
// reports how many leading rows are undefined and must be discarded when
// aligning features with targets.
package summarize
