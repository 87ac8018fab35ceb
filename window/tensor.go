package window

import "gonum.org/v1/gonum/mat"

// Tensor is a dense 3-D array of shape (rows, vars, lags) holding lagged
// windows: element (r, v, k) is the value of variable v at the k-th time
// point of window r.
type Tensor struct {
	rows, vars, lags int
	data             []float64
}

// NewTensor allocates a zero tensor of the given shape.
func NewTensor(rows, vars, lags int) *Tensor {
	return &Tensor{
		rows: rows,
		vars: vars,
		lags: lags,
		data: make([]float64, rows*vars*lags),
	}
}

// Dims returns the tensor shape (rows, vars, lags).
func (t *Tensor) Dims() (rows, vars, lags int) {
	return t.rows, t.vars, t.lags
}

// At returns the value of variable v at lag position k of window r.
func (t *Tensor) At(r, v, k int) float64 {
	return t.data[(r*t.vars+v)*t.lags+k]
}

// Set assigns the value of variable v at lag position k of window r.
func (t *Tensor) Set(r, v, k int, x float64) {
	t.data[(r*t.vars+v)*t.lags+k] = x
}

// SliceLags returns a copy of the tensor restricted to the first n lag
// positions of every window.
func (t *Tensor) SliceLags(n int) *Tensor {
	return t.SliceLagRange(0, n)
}

// SliceLagRange returns a copy of the tensor restricted to lag positions
// [from, to) of every window.
func (t *Tensor) SliceLagRange(from, to int) *Tensor {
	if from < 0 {
		from = 0
	}
	if to > t.lags {
		to = t.lags
	}
	n := to - from
	out := NewTensor(t.rows, t.vars, n)
	for r := 0; r < t.rows; r++ {
		for v := 0; v < t.vars; v++ {
			src := (r*t.vars+v)*t.lags + from
			dst := (r*out.vars + v) * out.lags
			copy(out.data[dst:dst+n], t.data[src:src+n])
		}
	}
	return out
}

// Stack concatenates tensors row-wise. All tensors must share the same
// variable and lag dimensions.
func Stack(tensors ...*Tensor) *Tensor {
	if len(tensors) == 0 {
		return NewTensor(0, 0, 0)
	}
	rows := 0
	for _, t := range tensors {
		rows += t.rows
	}
	out := NewTensor(rows, tensors[0].vars, tensors[0].lags)
	pos := 0
	for _, t := range tensors {
		copy(out.data[pos:], t.data)
		pos += len(t.data)
	}
	return out
}

// Matrix flattens the tensor to a 2-D matrix of shape (rows, vars*lags) for
// tabular regression. Row r holds the lags of variable 0, then variable 1,
// and so on, matching the layout used at both fit and predict time.
func (t *Tensor) Matrix() *mat.Dense {
	out := mat.NewDense(t.rows, t.vars*t.lags, nil)
	for r := 0; r < t.rows; r++ {
		start := r * t.vars * t.lags
		out.SetRow(r, t.data[start:start+t.vars*t.lags])
	}
	return out
}
