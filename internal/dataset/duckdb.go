// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/recommend"
)

// duckdbDSN opens a private in-memory database. Extension auto-install is
// off; CSV and Parquet readers are built in.
const duckdbDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// DuckDBReader reads CSV or Parquet datasets through an in-memory DuckDB
// instance. Files ending in .parquet use read_parquet; anything else uses
// read_csv_auto with header detection.
type DuckDBReader struct{}

// Read implements Reader.
func (DuckDBReader) Read(ctx context.Context, path string) ([]recommend.ReferenceRow, error) {
	conn, err := sql.Open("duckdb", duckdbDSN)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close DuckDB connection")
		}
	}()

	source := sourceExpr(path)

	columns, err := probeColumns(ctx, conn, source)
	if err != nil {
		return nil, err
	}
	s, err := resolveSchema(columns)
	if err != nil {
		return nil, err
	}

	// preserve_insertion_order is on by default, so rows come back in file order.
	query := "SELECT CAST(" + quoteIdent(columns[s.crop]) + " AS VARCHAR)"
	for _, i := range s.features {
		query += ", TRY_CAST(" + quoteIdent(columns[i]) + " AS DOUBLE)"
	}
	query += " FROM " + source

	rs, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer rs.Close() //nolint:errcheck // closed after iteration

	var rows []recommend.ReferenceRow
	for n := 1; rs.Next(); n++ {
		var crop sql.NullString
		var vals [7]sql.NullFloat64
		if err := rs.Scan(&crop, &vals[0], &vals[1], &vals[2], &vals[3], &vals[4], &vals[5], &vals[6]); err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", n, ErrMalformed, err)
		}

		var f [7]float64
		for j, v := range vals {
			if !v.Valid {
				return nil, fmt.Errorf("row %d: %w: %s is missing or not a number", n, ErrMalformed, featureColumns[j])
			}
			f[j] = v.Float64
		}

		row, err := newRow(crop.String, f)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		rows = append(rows, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return rows, nil
}

// probeColumns returns the column names DuckDB infers for source.
func probeColumns(ctx context.Context, conn *sql.DB, source string) ([]string, error) {
	rs, err := conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	defer rs.Close() //nolint:errcheck // no rows

	columns, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	return columns, nil
}

func sourceExpr(path string) string {
	lit := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return "read_parquet(" + lit + ")"
	}
	return "read_csv_auto(" + lit + ", header = true)"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
