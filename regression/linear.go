package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is a least-squares regressor solving the normal
// equations. A small L2 stabilizer (Alpha, scaled by the mean feature
// magnitude) keeps the solve well-posed when lagged features are collinear,
// as they routinely are for trending series. It supports multi-output
// targets and therefore works with every reduction strategy.
type LinearRegression struct {
	FitIntercept bool
	Alpha        float64

	coef   *mat.Dense // (nFeatures+intercept) x nOutputs
	inCols int
	fitted bool
}

// NewLinearRegression creates a least-squares regressor with an intercept
// and the default stabilizer.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{FitIntercept: true, Alpha: 1e-8}
}

// Clone returns an unfitted copy with the same configuration.
func (l *LinearRegression) Clone() Regressor {
	return &LinearRegression{FitIntercept: l.FitIntercept, Alpha: l.Alpha}
}

func (l *LinearRegression) augment(X *mat.Dense) *mat.Dense {
	if !l.FitIntercept {
		return X
	}
	rows, cols := X.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, 1)
	}
	out.Slice(0, rows, 1, cols+1).(*mat.Dense).Copy(X)
	return out
}

// FitMulti fits the regressor on a multi-column target matrix.
func (l *LinearRegression) FitMulti(X *mat.Dense, Y *mat.Dense) error {
	xRows, xCols := X.Dims()
	yRows, _ := Y.Dims()
	if xRows != yRows {
		return fmt.Errorf("feature matrix has %d rows, targets have %d", xRows, yRows)
	}
	if xRows == 0 {
		return errors.New("cannot fit on empty data")
	}

	a := l.augment(X)

	var gram, moment mat.Dense
	gram.Mul(a.T(), a)
	moment.Mul(a.T(), Y)

	p, _ := gram.Dims()
	if l.Alpha > 0 {
		trace := 0.0
		for i := 0; i < p; i++ {
			trace += gram.At(i, i)
		}
		lambda := l.Alpha * trace / float64(p)
		for i := 0; i < p; i++ {
			gram.Set(i, i, gram.At(i, i)+lambda)
		}
	}

	var coef mat.Dense
	if err := coef.Solve(&gram, &moment); err != nil {
		return fmt.Errorf("least squares solve failed: %w", err)
	}

	l.coef = &coef
	l.inCols = xCols
	l.fitted = true
	return nil
}

// Fit fits the regressor on a single target vector.
func (l *LinearRegression) Fit(X *mat.Dense, y []float64) error {
	return l.FitMulti(X, mat.NewDense(len(y), 1, y))
}

// PredictMulti predicts all fitted target columns for each input row.
func (l *LinearRegression) PredictMulti(X *mat.Dense) (*mat.Dense, error) {
	if !l.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	_, cols := X.Dims()
	if cols != l.inCols {
		return nil, fmt.Errorf("expected %d features, got %d", l.inCols, cols)
	}

	var out mat.Dense
	out.Mul(l.augment(X), l.coef)
	return &out, nil
}

// Predict returns one predicted value per input row.
func (l *LinearRegression) Predict(X *mat.Dense) ([]float64, error) {
	out, err := l.PredictMulti(X)
	if err != nil {
		return nil, err
	}
	rows, _ := out.Dims()
	pred := make([]float64, rows)
	for i := 0; i < rows; i++ {
		pred[i] = out.At(i, 0)
	}
	return pred, nil
}
