package timeseries

import "fmt"

// Panel is an ordered collection of co-indexed series, keyed by instance.
// Window operations apply per instance independently.
type Panel struct {
	keys   []string
	series map[string]*Series
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{series: make(map[string]*Series)}
}

// Add appends an instance to the panel. Instance keys must be unique.
func (p *Panel) Add(key string, s *Series) error {
	if _, ok := p.series[key]; ok {
		return fmt.Errorf("duplicate instance key %q", key)
	}
	p.keys = append(p.keys, key)
	p.series[key] = s
	return nil
}

// Keys returns the instance keys in insertion order.
func (p *Panel) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Get returns the series for the given instance key, or nil.
func (p *Panel) Get(key string) *Series {
	return p.series[key]
}

// NumInstances returns the number of instances in the panel.
func (p *Panel) NumInstances() int {
	return len(p.keys)
}

// PanelTable holds per-instance covariate tables for a panel.
type PanelTable struct {
	keys   []string
	tables map[string]*Table
}

// NewPanelTable creates an empty panel covariate collection.
func NewPanelTable() *PanelTable {
	return &PanelTable{tables: make(map[string]*Table)}
}

// Add appends a covariate table for an instance.
func (p *PanelTable) Add(key string, t *Table) error {
	if _, ok := p.tables[key]; ok {
		return fmt.Errorf("duplicate instance key %q", key)
	}
	p.keys = append(p.keys, key)
	p.tables[key] = t
	return nil
}

// Get returns the covariate table for the given instance key, or nil.
func (p *PanelTable) Get(key string) *Table {
	if p == nil {
		return nil
	}
	return p.tables[key]
}
