// Package stats provides forecast accuracy metrics.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics holds common forecast accuracy measures computed against a
// holdout set.
type Metrics struct {
	MAE  float64 // Mean absolute error
	RMSE float64 // Root mean squared error
	MAPE float64 // Mean absolute percentage error (percent)
	R2   float64 // Coefficient of determination
}

// Evaluate computes accuracy metrics for predictions against actual values.
// NaN predictions (for example from an unpredictable last window) make every
// metric NaN.
func Evaluate(actual, predicted []float64) (*Metrics, error) {
	if len(actual) != len(predicted) {
		return nil, errors.New("actual and predicted must have the same length")
	}
	if len(actual) == 0 {
		return nil, errors.New("cannot evaluate empty forecasts")
	}

	n := float64(len(actual))
	var sumAbs, sumSq, sumPct float64
	pctCount := 0.0
	for i := range actual {
		err := actual[i] - predicted[i]
		sumAbs += math.Abs(err)
		sumSq += err * err
		if actual[i] != 0 {
			sumPct += math.Abs(err / actual[i])
			pctCount++
		}
	}

	m := &Metrics{
		MAE:  sumAbs / n,
		RMSE: math.Sqrt(sumSq / n),
	}
	if pctCount > 0 {
		m.MAPE = 100 * sumPct / pctCount
	} else {
		m.MAPE = math.NaN()
	}

	meanActual := stat.Mean(actual, nil)
	var ssTot float64
	for _, a := range actual {
		d := a - meanActual
		ssTot += d * d
	}
	if ssTot > 0 {
		m.R2 = 1 - sumSq/ssTot
	} else {
		m.R2 = math.NaN()
	}
	return m, nil
}
