// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cropwise/internal/recommend"
	"github.com/tomtom215/cropwise/internal/validation"
)

var (
	// ErrNotReady is returned by /predict before a matcher is attached.
	ErrNotReady = errors.New("reference table not loaded")

	// ErrNotObject is returned when a body is valid JSON but not an object.
	ErrNotObject = errors.New("request body must be a JSON object")
)

// MessageNoMatches is the client-facing text for recommend.ErrNoMatches.
const MessageNoMatches = "No matching crops found."

// statusForError maps a request failure to a status code and message.
// Only an empty result is distinguished; every other failure, including
// invalid input, is a 500 carrying the error text.
func statusForError(err error) (int, string) {
	if errors.Is(err, recommend.ErrNoMatches) {
		return http.StatusNotFound, MessageNoMatches
	}

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return http.StatusInternalServerError, verr.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
