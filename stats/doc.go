// Package stats provides accuracy metrics for evaluating forecasts against
// holdout data.
//
// Compare a forecast to the actual values:
//
//	m, err := stats.Evaluate(actual, predicted)
//	fmt.Printf("MAE=%.3f RMSE=%.3f MAPE=%.1f%% R2=%.3f\n",
//	    m.MAE, m.RMSE, m.MAPE, m.R2)
//
// MAPE skips time points where the actual value is zero; R2 is NaN for a
// constant holdout.
package stats
