// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

// Table is the ordered, read-only reference table. It is built once at
// startup and shared by all requests; no accessor hands out a mutable view.
type Table struct {
	rows []ReferenceRow
}

// NewTable copies rows into a new Table.
func NewTable(rows []ReferenceRow) *Table {
	cp := make([]ReferenceRow, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

// Len returns the number of rows. A nil Table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the row at index i. It panics if i is out of range.
func (t *Table) Row(i int) ReferenceRow {
	return t.rows[i]
}

// Rows returns a copy of all rows in table order.
func (t *Table) Rows() []ReferenceRow {
	if t == nil {
		return nil
	}
	cp := make([]ReferenceRow, len(t.rows))
	copy(cp, t.rows)
	return cp
}

// CropCount is a crop name and how many rows carry it.
type CropCount struct {
	Crop string `json:"crop" yaml:"crop"`
	Rows int    `json:"rows" yaml:"rows"`
}

// Crops returns the distinct crop names in order of first appearance.
func (t *Table) Crops() []string {
	counts := t.CropCounts()
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Crop
	}
	return names
}

// CropCounts returns per-crop row counts in order of first appearance.
func (t *Table) CropCounts() []CropCount {
	if t == nil {
		return nil
	}
	index := make(map[string]int)
	var counts []CropCount
	for _, r := range t.rows {
		i, ok := index[r.Crop]
		if !ok {
			i = len(counts)
			index[r.Crop] = i
			counts = append(counts, CropCount{Crop: r.Crop})
		}
		counts[i].Rows++
	}
	return counts
}
