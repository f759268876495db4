// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package validation

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValid   bool
		wantValue   float64
	}{
		{"integer", `{"v": 90}`, true, true, 90},
		{"float", `{"v": 6.5}`, true, true, 6.5},
		{"negative exponent", `{"v": -1.5e2}`, true, true, -150},
		{"zero", `{"v": 0}`, true, true, 0},
		{"numeric string", `{"v": "42"}`, true, true, 42},
		{"padded numeric string", `{"v": "  20.8 "}`, true, true, 20.8},
		{"missing", `{}`, false, false, 0},
		{"null", `{"v": null}`, false, false, 0},
		{"word", `{"v": "abc"}`, true, false, 0},
		{"empty string", `{"v": ""}`, true, false, 0},
		{"NaN string", `{"v": "NaN"}`, true, false, 0},
		{"infinity string", `{"v": "Infinity"}`, true, false, 0},
		{"hex string", `{"v": "0x10"}`, true, false, 0},
		{"overflow", `{"v": 1e400}`, true, false, 0},
		{"bool", `{"v": true}`, true, false, 0},
		{"object", `{"v": {"x": 1}}`, true, false, 0},
		{"array", `{"v": [1]}`, true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var body struct {
				V Number `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.body), &body); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if body.V.Present() != tt.wantPresent {
				t.Errorf("Present() = %v, want %v", body.V.Present(), tt.wantPresent)
			}
			if body.V.Valid() != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", body.V.Valid(), tt.wantValid)
			}
			if body.V.Float64() != tt.wantValue {
				t.Errorf("Float64() = %v, want %v", body.V.Float64(), tt.wantValue)
			}
		})
	}
}

func TestNumber_NewNumber(t *testing.T) {
	t.Parallel()

	n := NewNumber(202.9)
	if !n.Valid() || n.Float64() != 202.9 || n.String() != "202.9" {
		t.Errorf("NewNumber(202.9) = %+v", n)
	}
	if NewNumber(math.NaN()).Valid() {
		t.Error("NewNumber(NaN) should not be valid")
	}
}

type numberRequest struct {
	N  Number `json:"N" validate:"required,finite"`
	PH Number `json:"ph" validate:"required,finite"`
}

func TestValidateStruct_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"valid", `{"N": 0, "ph": "6.5"}`, ""},
		{"missing", `{"ph": 7}`, "N is required"},
		{"null counts as missing", `{"N": null, "ph": 7}`, "N is required"},
		{"non-numeric", `{"N": 1, "ph": "acid"}`, "ph must be a number"},
		{"all failing", `{"ph": false}`, "N is required; ph must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req numberRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			verr := ValidateStruct(&req)
			switch {
			case tt.wantMsg == "" && verr != nil:
				t.Errorf("ValidateStruct() = %v, want nil", verr)
			case tt.wantMsg != "" && verr == nil:
				t.Errorf("ValidateStruct() = nil, want %q", tt.wantMsg)
			case verr != nil && verr.Error() != tt.wantMsg:
				t.Errorf("Error() = %q, want %q", verr.Error(), tt.wantMsg)
			}
		})
	}
}
