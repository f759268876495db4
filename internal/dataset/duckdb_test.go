// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tomtom215/cropwise/internal/config"
)

func TestDuckDBReader_MatchesCSVReader(t *testing.T) {
	path := filepath.Join("..", "..", "data", "crops.csv")

	want, err := CSVReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("CSVReader.Read() error = %v", err)
	}
	got, err := DuckDBReader{}.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("DuckDBReader.Read() error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("duckdb returned %d rows, csv returned %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: duckdb %+v, csv %+v", i, got[i], want[i])
		}
	}
}

func TestDuckDBReader_LabelColumn(t *testing.T) {
	path := writeFile(t, "labelled.csv", "label,N,P,K,temperature,humidity,ph,rainfall\nrice,90,42,43,20.8,82,6.5,202.9\n")

	table, err := Load(context.Background(), config.DatasetConfig{Path: path, Driver: config.DriverDuckDB})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 1 || table.Row(0).Crop != "rice" || table.Row(0).PH != 6.5 {
		t.Errorf("unexpected table: %+v", table.Rows())
	}
}

func TestDuckDBReader_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing column", "crop,N,P,K,temperature,humidity,rainfall\nrice,1,1,1,1,1,1\n"},
		{"non-numeric cell", "crop,N,P,K,temperature,humidity,ph,rainfall\nrice,1,1,1,1,1,1,1\nmaize,1,1,1,1,1,acid,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.csv", tt.body)
			_, err := DuckDBReader{}.Read(context.Background(), path)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Read() error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestSourceExpr(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"crops.csv":           "read_csv_auto('crops.csv', header = true)",
		"/data/CROPS.PARQUET": "read_parquet('/data/CROPS.PARQUET')",
		"o'brien.csv":         "read_csv_auto('o''brien.csv', header = true)",
	}
	for in, want := range tests {
		if got := sourceExpr(in); got != want {
			t.Errorf("sourceExpr(%q) = %q, want %q", in, got, want)
		}
	}
	if got := quoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("quoteIdent() = %s", got)
	}
}
