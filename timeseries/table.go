package timeseries

import (
	"errors"
	"fmt"
	"time"
)

// Table holds exogenous covariate columns aligned index-for-index with a
// Series. Columns are stored column-major.
type Table struct {
	Timestamps []time.Time
	Names      []string
	Columns    [][]float64
}

// NewTable creates a covariate table from named columns. All columns must
// have the same length as the timestamps.
func NewTable(timestamps []time.Time, names []string, columns [][]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, errors.New("names and columns must have the same length")
	}
	for i, col := range columns {
		if len(col) != len(timestamps) {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", names[i], len(col), len(timestamps))
		}
	}
	return &Table{
		Timestamps: timestamps,
		Names:      names,
		Columns:    columns,
	}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Timestamps)
}

// NumVars returns the number of covariate columns.
func (t *Table) NumVars() int {
	return len(t.Columns)
}

// At returns the value of column j at row i.
func (t *Table) At(i, j int) float64 {
	return t.Columns[j][i]
}

// Row returns the values of all columns at row i.
func (t *Table) Row(i int) []float64 {
	out := make([]float64, len(t.Columns))
	for j, col := range t.Columns {
		out[j] = col[i]
	}
	return out
}

// Slice returns rows start to end (exclusive) as a new table.
func (t *Table) Slice(start, end int) *Table {
	if start < 0 {
		start = 0
	}
	if end > t.Len() {
		end = t.Len()
	}
	if start >= end {
		return &Table{Names: t.Names, Columns: make([][]float64, len(t.Columns))}
	}

	timestamps := make([]time.Time, end-start)
	copy(timestamps, t.Timestamps[start:end])

	columns := make([][]float64, len(t.Columns))
	for j, col := range t.Columns {
		columns[j] = make([]float64, end-start)
		copy(columns[j], col[start:end])
	}

	return &Table{
		Timestamps: timestamps,
		Names:      t.Names,
		Columns:    columns,
	}
}

// LastN returns the trailing n rows as a new table.
func (t *Table) LastN(n int) *Table {
	return t.Slice(t.Len()-n, t.Len())
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.Slice(0, t.Len())
}
