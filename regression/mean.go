package regression

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MeanRegressor predicts the mean of the training targets regardless of the
// input features. It is a baseline for comparing reduction strategies.
type MeanRegressor struct {
	means  []float64
	fitted bool
}

// NewMeanRegressor creates a mean-predicting baseline regressor.
func NewMeanRegressor() *MeanRegressor {
	return &MeanRegressor{}
}

// Clone returns an unfitted copy.
func (m *MeanRegressor) Clone() Regressor {
	return &MeanRegressor{}
}

// Fit records the mean of the target vector.
func (m *MeanRegressor) Fit(_ *mat.Dense, y []float64) error {
	if len(y) == 0 {
		return errors.New("cannot fit on empty data")
	}
	m.means = []float64{stat.Mean(y, nil)}
	m.fitted = true
	return nil
}

// FitMulti records the column means of the target matrix.
func (m *MeanRegressor) FitMulti(_ *mat.Dense, Y *mat.Dense) error {
	rows, cols := Y.Dims()
	if rows == 0 {
		return errors.New("cannot fit on empty data")
	}
	m.means = make([]float64, cols)
	for j := 0; j < cols; j++ {
		m.means[j] = stat.Mean(mat.Col(nil, j, Y), nil)
	}
	m.fitted = true
	return nil
}

// Predict returns the training mean for each input row.
func (m *MeanRegressor) Predict(X *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	rows, _ := X.Dims()
	out := make([]float64, rows)
	for i := range out {
		out[i] = m.means[0]
	}
	return out, nil
}

// PredictMulti returns the training column means for each input row.
func (m *MeanRegressor) PredictMulti(X *mat.Dense) (*mat.Dense, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before prediction")
	}
	rows, _ := X.Dims()
	out := mat.NewDense(rows, len(m.means), nil)
	for i := 0; i < rows; i++ {
		out.SetRow(i, m.means)
	}
	return out, nil
}
