package window

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goreduce/timeseries"
)

// LastWindow returns the trailing windowLength observations of the series
// and, when covariates are present, the matching covariate rows. The window
// ends at the series cutoff. The covariate matrix is nil when X is nil.
func LastWindow(y *timeseries.Series, X *timeseries.Table, windowLength int) ([]float64, *mat.Dense) {
	yWin := y.LastN(windowLength)

	var xWin *mat.Dense
	if X != nil {
		tail := X.LastN(windowLength)
		xWin = mat.NewDense(tail.Len(), X.NumVars(), nil)
		for i := 0; i < tail.Len(); i++ {
			xWin.SetRow(i, tail.Row(i))
		}
	}
	return yWin, xWin
}

// Predictable reports whether a prediction can be generated from the given
// window: it must hold exactly windowLength entries, none of which are
// missing or infinite. An unpredictable window is not an error; callers
// short-circuit to an all-NaN forecast instead.
func Predictable(win []float64, windowLength int) bool {
	if len(win) != windowLength {
		return false
	}
	return Finite(win)
}

// Finite reports whether every value in the slice is neither NaN nor Inf.
func Finite(win []float64) bool {
	for _, v := range win {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
