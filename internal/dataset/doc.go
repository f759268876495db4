// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package dataset loads the crop reference table at startup.
//
// Two drivers are available:
//
//   - csv: encoding/csv with header-driven column mapping
//   - duckdb: an in-memory DuckDB reading CSV (read_csv_auto) or Parquet
//
// Both accept the required columns crop (or label), N, P, K, temperature,
// humidity, ph and rainfall in any order and any letter case. Extra
// columns are ignored. A missing column, a non-numeric or non-finite value,
// or an empty crop name fails the load with ErrMalformed.
//
//	table, err := dataset.Load(ctx, cfg.Dataset)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load reference table")
//	}
package dataset
