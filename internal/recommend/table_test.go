// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

import (
	"reflect"
	"testing"
)

func TestNewTable_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := testRows()
	table := NewTable(rows)
	rows[0].Crop = "mutated"

	if table.Row(0).Crop != "rice" {
		t.Errorf("table should not alias its input, got %q", table.Row(0).Crop)
	}
}

func TestTable_RowsReturnsCopy(t *testing.T) {
	t.Parallel()

	table := NewTable(testRows())
	got := table.Rows()
	got[0].N = -1

	if table.Row(0).N != 90 {
		t.Errorf("Rows() should return a copy, row 0 N = %v", table.Row(0).N)
	}
	if table.Len() != len(testRows()) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(testRows()))
	}
}

func TestTable_Crops(t *testing.T) {
	t.Parallel()

	table := NewTable(testRows())

	wantNames := []string{"rice", "maize", "chickpea", "jute", "coffee"}
	if got := table.Crops(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Crops() = %v, want %v", got, wantNames)
	}

	counts := table.CropCounts()
	if counts[0] != (CropCount{Crop: "rice", Rows: 2}) {
		t.Errorf("CropCounts()[0] = %+v, want rice x2", counts[0])
	}
}

func TestTable_Nil(t *testing.T) {
	t.Parallel()

	var table *Table
	if table.Len() != 0 || table.Rows() != nil || len(table.Crops()) != 0 {
		t.Error("nil table should behave as empty")
	}
}
