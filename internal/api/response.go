// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/recommend"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PredictResponse is the body of a successful /predict request.
type PredictResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// StatusResponse acknowledges a /contact submission.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes {"error": message}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &ErrorResponse{Error: message})
}

// respondText writes a plain-text body.
func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Error().Err(err).Msg("Failed to write text response")
	}
}
