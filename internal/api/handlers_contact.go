// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cropwise/internal/contact"
	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
)

// MessageContactReceived is the status returned for every accepted submission.
const MessageContactReceived = "Message received successfully!"

// Contact handles POST /contact. Any JSON object is accepted; name, email
// and message are read when present and may hold any JSON value.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	var fields map[string]interface{}
	body := http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if fields == nil {
		respondError(w, http.StatusInternalServerError, ErrNotObject.Error())
		return
	}

	msg := contact.Message{
		Name:  fieldString(fields["name"]),
		Email: fieldString(fields["email"]),
		Body:  fieldString(fields["message"]),
	}
	metrics.RecordContactMessage(metrics.ContactStageReceived)

	email := logging.SanitizeValue(msg.Email)
	if h.config.RedactEmail {
		email = logging.SanitizeEmail(msg.Email)
	}
	log.Info().
		Str("name", logging.SanitizeValue(msg.Name)).
		Str("email", email).
		Str("contact_message", logging.SanitizeValue(msg.Body)).
		Msg("Contact form submission")

	if h.contact != nil {
		if err := h.contact.Publish(r.Context(), msg); err != nil {
			log.Warn().Err(err).Msg("Failed to hand contact message to relay")
		}
	}

	respondJSON(w, http.StatusOK, &StatusResponse{Status: MessageContactReceived})
}

// fieldString renders a decoded JSON value for logging. Strings are used as
// is, null and absent fields are empty, anything else is re-encoded.
func fieldString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
