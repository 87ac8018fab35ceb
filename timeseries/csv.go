package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn       string   // Column name for dates (optional)
	ValueColumn      string   // Column name for values (default: "y")
	IDColumn         string   // Column name for instance keys (panel loading)
	CovariateColumns []string // Columns loaded as exogenous covariates
	DateFormat       string   // Date format (default: "2006-01-02")
	HasHeader        bool     // Whether CSV has header row (default: true)
	Delimiter        rune     // Field delimiter (default: ',')
	SkipRows         int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series, and optionally covariate columns, from a CSV
// file. The returned table is nil unless CovariateColumns is set.
func LoadCSV(filename string, opts *CSVOptions) (*Series, *Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

type csvLayout struct {
	valueIdx int
	dateIdx  int
	idIdx    int
	covIdx   []int
}

func resolveLayout(headers []string, opts *CSVOptions) (csvLayout, error) {
	l := csvLayout{valueIdx: -1, dateIdx: -1, idIdx: -1}

	for i, h := range headers {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch {
		case h == opts.ValueColumn:
			l.valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			l.dateIdx = i
		case opts.DateColumn == "" && (h == "ds" || h == "date" || h == "Date"):
			if l.dateIdx == -1 {
				l.dateIdx = i
			}
		case opts.IDColumn != "" && h == opts.IDColumn:
			l.idIdx = i
		}
		for _, name := range opts.CovariateColumns {
			if h == name {
				l.covIdx = append(l.covIdx, i)
			}
		}
	}

	if l.valueIdx == -1 {
		return l, fmt.Errorf("value column %q not found", opts.ValueColumn)
	}
	if len(l.covIdx) != len(opts.CovariateColumns) {
		return l, errors.New("not all covariate columns found")
	}
	if opts.IDColumn != "" && l.idIdx == -1 {
		return l, fmt.Errorf("id column %q not found", opts.IDColumn)
	}
	return l, nil
}

func parseValue(field string) float64 {
	field = strings.TrimSpace(field)
	if field == "" || field == "NA" || field == "NaN" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, *Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	if !opts.HasHeader {
		return nil, nil, errors.New("headerless CSV loading is not supported")
	}
	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	layout, err := resolveLayout(header, opts)
	if err != nil {
		return nil, nil, err
	}

	var (
		values     []float64
		timestamps []time.Time
		covs       = make([][]float64, len(layout.covIdx))
	)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		values = append(values, parseValue(record[layout.valueIdx]))
		for j, idx := range layout.covIdx {
			covs[j] = append(covs[j], parseValue(record[idx]))
		}

		if layout.dateIdx >= 0 {
			ts, err := time.Parse(opts.DateFormat, strings.TrimSpace(record[layout.dateIdx]))
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: bad date: %w", row, err)
			}
			timestamps = append(timestamps, ts)
		}
		row++
	}

	if len(values) == 0 {
		return nil, nil, errors.New("no data rows found")
	}

	var series *Series
	if layout.dateIdx >= 0 {
		series, err = NewWithTimestamps(timestamps, values)
		if err != nil {
			return nil, nil, err
		}
	} else {
		series = New(values)
	}
	series.Name = opts.ValueColumn

	var table *Table
	if len(layout.covIdx) > 0 {
		table, err = NewTable(series.Timestamps, opts.CovariateColumns, covs)
		if err != nil {
			return nil, nil, err
		}
	}
	return series, table, nil
}

// LoadCSVPanel loads a panel of series from a CSV file, grouping rows by the
// IDColumn. Rows for each instance must appear in time order.
func LoadCSVPanel(filename string, opts *CSVOptions) (*Panel, error) {
	if opts == nil || opts.IDColumn == "" {
		return nil, errors.New("panel loading requires IDColumn")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	layout, err := resolveLayout(header, opts)
	if err != nil {
		return nil, err
	}

	order := []string{}
	grouped := map[string]*struct {
		values     []float64
		timestamps []time.Time
	}{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		key := strings.TrimSpace(record[layout.idIdx])
		g, ok := grouped[key]
		if !ok {
			g = &struct {
				values     []float64
				timestamps []time.Time
			}{}
			grouped[key] = g
			order = append(order, key)
		}
		g.values = append(g.values, parseValue(record[layout.valueIdx]))
		if layout.dateIdx >= 0 {
			ts, err := time.Parse(opts.DateFormat, strings.TrimSpace(record[layout.dateIdx]))
			if err != nil {
				return nil, err
			}
			g.timestamps = append(g.timestamps, ts)
		}
	}

	panel := NewPanel()
	for _, key := range order {
		g := grouped[key]
		var s *Series
		if len(g.timestamps) > 0 {
			s, err = NewWithTimestamps(g.timestamps, g.values)
			if err != nil {
				return nil, fmt.Errorf("instance %q: %w", key, err)
			}
		} else {
			s = New(g.values)
		}
		s.Name = key
		if err := panel.Add(key, s); err != nil {
			return nil, err
		}
	}
	return panel, nil
}
