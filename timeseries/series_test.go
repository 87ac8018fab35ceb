package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)}

	s, err := NewWithTimestamps(timestamps, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Failed to create series: %v", err)
	}
	if !s.Cutoff().Equal(timestamps[2]) {
		t.Errorf("Expected cutoff %v, got %v", timestamps[2], s.Cutoff())
	}
	if s.Freq() != 24*time.Hour {
		t.Errorf("Expected daily frequency, got %v", s.Freq())
	}

	_, err = NewWithTimestamps(timestamps, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}

	unsorted := []time.Time{base.AddDate(0, 0, 1), base, base.AddDate(0, 0, 2)}
	_, err = NewWithTimestamps(unsorted, []float64{1, 2, 3})
	if err == nil {
		t.Error("Expected error for unsorted timestamps")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	sliced := s.Slice(1, 4)
	if sliced.Len() != 3 {
		t.Errorf("Expected length 3, got %d", sliced.Len())
	}
	if sliced.Values[0] != 2 || sliced.Values[2] != 4 {
		t.Errorf("Unexpected slice values: %v", sliced.Values)
	}

	empty := s.Slice(4, 2)
	if empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}
}

func TestLastN(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	last := s.LastN(3)
	if len(last) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(last))
	}
	if last[0] != 3 || last[2] != 5 {
		t.Errorf("Unexpected trailing values: %v", last)
	}

	all := s.LastN(10)
	if len(all) != 5 {
		t.Errorf("Expected all 5 values, got %d", len(all))
	}
}

func TestAppend(t *testing.T) {
	s := New([]float64{1, 2, 3})
	freq := s.Freq()
	cutoff := s.Cutoff()

	s.Append(4)
	if s.Len() != 4 {
		t.Errorf("Expected length 4, got %d", s.Len())
	}
	if !s.Cutoff().Equal(cutoff.Add(freq)) {
		t.Errorf("Expected cutoff to advance by one interval, got %v", s.Cutoff())
	}
}

func TestIsFinite(t *testing.T) {
	if !New([]float64{1, 2, 3}).IsFinite() {
		t.Error("Expected finite series")
	}
	if New([]float64{1, math.NaN(), 3}).IsFinite() {
		t.Error("Expected NaN to be detected")
	}
	if New([]float64{1, math.Inf(1), 3}).IsFinite() {
		t.Error("Expected Inf to be detected")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 99

	if s.Values[0] != 1 {
		t.Error("Copy should not share values with the original")
	}
}

func TestTable(t *testing.T) {
	s := New([]float64{1, 2, 3, 4})
	table, err := NewTable(s.Timestamps, []string{"a", "b"}, [][]float64{
		{10, 11, 12, 13},
		{20, 21, 22, 23},
	})
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	if table.Len() != 4 || table.NumVars() != 2 {
		t.Errorf("Unexpected dims: %d rows, %d vars", table.Len(), table.NumVars())
	}
	if table.At(2, 1) != 22 {
		t.Errorf("Expected 22, got %f", table.At(2, 1))
	}

	row := table.Row(1)
	if row[0] != 11 || row[1] != 21 {
		t.Errorf("Unexpected row: %v", row)
	}

	tail := table.LastN(2)
	if tail.Len() != 2 || tail.At(0, 0) != 12 {
		t.Errorf("Unexpected tail: %v", tail.Columns)
	}

	_, err = NewTable(s.Timestamps, []string{"a"}, [][]float64{{1, 2}})
	if err == nil {
		t.Error("Expected error for misaligned column")
	}
}

func TestPanel(t *testing.T) {
	p := NewPanel()
	if err := p.Add("a", New([]float64{1, 2})); err != nil {
		t.Fatalf("Failed to add instance: %v", err)
	}
	if err := p.Add("b", New([]float64{3, 4})); err != nil {
		t.Fatalf("Failed to add instance: %v", err)
	}

	if err := p.Add("a", New([]float64{5})); err == nil {
		t.Error("Expected error for duplicate key")
	}

	keys := p.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Expected insertion order [a b], got %v", keys)
	}
	if p.Get("b").Values[1] != 4 {
		t.Errorf("Unexpected instance values: %v", p.Get("b").Values)
	}
	if p.Get("missing") != nil {
		t.Error("Expected nil for missing key")
	}
}
