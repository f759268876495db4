// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package validation

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Number is a JSON request field that accepts a number or a numeric string.
//
// Decoding never fails: the outcome is recorded on the value and reported
// by ValidateStruct, so every bad field in a body is listed at once.
// Tag Number fields with `validate:"required,finite"`. The zero value is an
// absent field, which "required" rejects.
type Number struct {
	raw     string
	value   float64
	present bool
	valid   bool
}

// NewNumber returns a present, valid Number holding f.
func NewNumber(f float64) Number {
	return Number{
		raw:     strconv.FormatFloat(f, 'g', -1, 64),
		value:   f,
		present: true,
		valid:   !math.IsNaN(f) && !math.IsInf(f, 0),
	}
}

// UnmarshalJSON implements json.Unmarshaler. null is treated as absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}
	*n = Number{raw: string(data), present: true}

	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		n.value, n.valid = parseNumeric(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		n.value, n.valid = parseNumeric(string(data))
	}
	return nil
}

// parseNumeric parses a decimal float and rejects NaN, infinities, hex
// floats and out-of-range values.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float64 returns the parsed value; zero unless Valid.
func (n Number) Float64() float64 {
	return n.value
}

// Present reports whether the field appeared in the body with a non-null value.
func (n Number) Present() bool {
	return n.present
}

// Valid reports whether the field held a finite number.
func (n Number) Valid() bool {
	return n.present && n.valid
}

// String returns the raw JSON text of the field.
func (n Number) String() string {
	return n.raw
}
