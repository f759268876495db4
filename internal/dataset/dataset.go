// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
	"github.com/tomtom215/cropwise/internal/recommend"
)

var (
	// ErrMalformed wraps every structural or value error in a dataset.
	ErrMalformed = errors.New("malformed dataset")

	// ErrUnknownDriver is returned for a driver other than csv or duckdb.
	ErrUnknownDriver = errors.New("unknown dataset driver")
)

// Reader reads reference rows from a dataset file.
type Reader interface {
	Read(ctx context.Context, path string) ([]recommend.ReferenceRow, error)
}

// NewReader returns the Reader for driver.
func NewReader(driver string) (Reader, error) {
	switch driver {
	case config.DriverCSV, "":
		return CSVReader{}, nil
	case config.DriverDuckDB:
		return DuckDBReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Load reads the dataset described by cfg into an immutable Table.
// A dataset with a header and no rows loads as an empty Table.
func Load(ctx context.Context, cfg config.DatasetConfig) (*recommend.Table, error) {
	start := time.Now()

	reader, err := NewReader(cfg.Driver)
	if err != nil {
		return nil, err
	}

	rows, err := reader.Read(ctx, cfg.Path)
	if err != nil {
		metrics.RecordReferenceTable(cfg.Driver, 0, 0, time.Since(start), err)
		return nil, fmt.Errorf("load dataset %s: %w", cfg.Path, err)
	}

	table := recommend.NewTable(rows)
	crops := len(table.Crops())
	metrics.RecordReferenceTable(cfg.Driver, table.Len(), crops, time.Since(start), nil)

	if table.Len() == 0 {
		logging.Warn().Str("path", cfg.Path).Msg("Reference table is empty; every prediction will return no matches")
	} else {
		logging.Info().
			Str("path", cfg.Path).
			Str("driver", cfg.Driver).
			Int("rows", table.Len()).
			Int("crops", crops).
			Dur("elapsed", time.Since(start)).
			Msg("Reference table loaded")
	}

	return table, nil
}

// Column names. Header matching is case-insensitive.
const (
	colCrop        = "crop"
	colLabel       = "label"
	colN           = "n"
	colP           = "p"
	colK           = "k"
	colTemperature = "temperature"
	colHumidity    = "humidity"
	colPH          = "ph"
	colRainfall    = "rainfall"
)

var featureColumns = []string{colN, colP, colK, colTemperature, colHumidity, colPH, colRainfall}

// schema maps each required column to its position in a header.
type schema struct {
	crop     int
	features [7]int // order of featureColumns
}

// resolveSchema locates the required columns in header. The crop column may
// be named "crop" or "label"; other columns are ignored.
func resolveSchema(header []string) (schema, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[name]; dup {
			return schema{}, fmt.Errorf("%w: duplicate column %q", ErrMalformed, h)
		}
		pos[name] = i
	}

	var s schema
	var missing []string

	if i, ok := pos[colCrop]; ok {
		s.crop = i
	} else if i, ok := pos[colLabel]; ok {
		s.crop = i
	} else {
		missing = append(missing, colCrop)
	}

	for j, col := range featureColumns {
		i, ok := pos[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		s.features[j] = i
	}

	if len(missing) > 0 {
		return schema{}, fmt.Errorf("%w: missing column(s) %s", ErrMalformed, strings.Join(missing, ", "))
	}
	return s, nil
}

// newRow builds and checks a row from a crop name and features in
// featureColumns order.
func newRow(crop string, f [7]float64) (recommend.ReferenceRow, error) {
	crop = strings.TrimSpace(crop)
	if crop == "" {
		return recommend.ReferenceRow{}, fmt.Errorf("%w: empty crop name", ErrMalformed)
	}
	for j, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return recommend.ReferenceRow{}, fmt.Errorf("%w: %s is not finite", ErrMalformed, featureColumns[j])
		}
	}
	return recommend.ReferenceRow{
		Crop:        crop,
		N:           f[0],
		P:           f[1],
		K:           f[2],
		Temperature: f[3],
		Humidity:    f[4],
		PH:          f[5],
		Rainfall:    f[6],
	}, nil
}
