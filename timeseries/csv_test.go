package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	series, table, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if table != nil {
		t.Error("Expected no covariate table without CovariateColumns")
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if series.Freq().Hours() != 24 {
		t.Errorf("Expected daily frequency, got %v", series.Freq())
	}
}

func TestLoadCSVWithCovariates(t *testing.T) {
	csvData := `ds,y,temp,promo
2020-01-01,100,15.5,0
2020-01-02,101,16.0,1
2020-01-03,102,14.2,0`

	opts := DefaultCSVOptions()
	opts.CovariateColumns = []string{"temp", "promo"}

	series, table, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
	if table == nil {
		t.Fatal("Expected covariate table")
	}
	if table.NumVars() != 2 || table.Len() != 3 {
		t.Errorf("Unexpected table dims: %d vars, %d rows", table.NumVars(), table.Len())
	}
	if table.At(1, 0) != 16.0 || table.At(1, 1) != 1 {
		t.Errorf("Unexpected covariate row: %v", table.Row(1))
	}
}

func TestLoadCSVMissingValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102`

	series, _, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.IsFinite() {
		t.Error("Expected NA to load as NaN")
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csvData := `ds,other
2020-01-01,100`

	_, _, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err == nil {
		t.Error("Expected error for missing value column")
	}
}

func TestLoadCSVPanel(t *testing.T) {
	csvData := `unique_id,ds,y
s1,2020-01-01,1
s1,2020-01-02,2
s2,2020-01-01,10
s2,2020-01-02,20
s2,2020-01-03,30`

	path := filepath.Join(t.TempDir(), "panel.csv")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultCSVOptions()
	opts.IDColumn = "unique_id"

	panel, err := LoadCSVPanel(path, opts)
	if err != nil {
		t.Fatalf("Failed to load panel: %v", err)
	}

	keys := panel.Keys()
	if len(keys) != 2 || keys[0] != "s1" || keys[1] != "s2" {
		t.Errorf("Expected instances [s1 s2], got %v", keys)
	}
	if panel.Get("s1").Len() != 2 {
		t.Errorf("Expected 2 observations for s1, got %d", panel.Get("s1").Len())
	}
	if panel.Get("s2").Values[2] != 30 {
		t.Errorf("Unexpected s2 values: %v", panel.Get("s2").Values)
	}
}

func TestLoadCSVPanelRequiresID(t *testing.T) {
	if _, err := LoadCSVPanel("whatever.csv", DefaultCSVOptions()); err == nil {
		t.Error("Expected error without IDColumn")
	}
}
