// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tomtom215/cropwise/internal/recommend"
)

// CSVReader reads a comma-separated dataset with a header row.
type CSVReader struct{}

// Read implements Reader.
func (CSVReader) Read(ctx context.Context, path string) ([]recommend.ReferenceRow, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadCSV(ctx, f)
}

// ReadCSV parses a CSV dataset from r. Errors name the offending line.
func ReadCSV(ctx context.Context, r io.Reader) ([]recommend.ReferenceRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s, err := resolveSchema(header)
	if err != nil {
		return nil, err
	}

	var rows []recommend.ReferenceRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError carries the line number.
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)

		row, err := parseRecord(s, record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRecord(s schema, record []string) (recommend.ReferenceRow, error) {
	var f [7]float64
	for j, i := range s.features {
		raw := strings.TrimSpace(record[i])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return recommend.ReferenceRow{}, fmt.Errorf("%w: %s value %q is not a number", ErrMalformed, featureColumns[j], raw)
		}
		f[j] = v
	}
	return newRow(record[s.crop], f)
}
