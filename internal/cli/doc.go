// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package cli implements cropctl, the offline companion to the HTTP service.
//
// cropctl loads the same reference table and catalog the server uses and
// scores readings locally, printing the per-crop distance that the HTTP API
// does not expose.
//
// # Commands
//
// recommend - rank crops for one set of readings:
//
//	cropctl recommend --n 90 --p 42 --k 43 --temperature 20.8 \
//	    --humidity 82 --ph 6.5 --rainfall 202.9 [--format json|yaml|table]
//
// crops - list the crops in the reference table with their row counts:
//
//	cropctl crops [--dataset data/crops.csv] [--format table]
//
// # Shared Flags
//
//	--dataset   reference table path (env DATASET_PATH, default data/crops.csv)
//	--driver    csv or duckdb (env DATASET_DRIVER)
//	--catalog   YAML catalog override (env CATALOG_PATH)
//	--format    json, yaml or table (default table)
//
// Diagnostics go to stderr through the zerolog console writer; results go
// to stdout.
package cli
