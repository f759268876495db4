// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
	"github.com/tomtom215/cropwise/internal/recommend"
	"github.com/tomtom215/cropwise/internal/validation"
)

// PredictRequest is the body of POST /predict. Each field accepts a JSON
// number or a numeric string.
type PredictRequest struct {
	N           validation.Number `json:"N" validate:"required,finite"`
	P           validation.Number `json:"P" validate:"required,finite"`
	K           validation.Number `json:"K" validate:"required,finite"`
	Temperature validation.Number `json:"temperature" validate:"required,finite"`
	Humidity    validation.Number `json:"humidity" validate:"required,finite"`
	PH          validation.Number `json:"ph" validate:"required,finite"`
	Rainfall    validation.Number `json:"rainfall" validate:"required,finite"`
}

// FeatureVector converts a validated request.
func (p *PredictRequest) FeatureVector() recommend.FeatureVector {
	return recommend.FeatureVector{
		N:           p.N.Float64(),
		P:           p.P.Float64(),
		K:           p.K.Float64(),
		Temperature: p.Temperature.Float64(),
		Humidity:    p.Humidity.Float64(),
		PH:          p.PH.Float64(),
		Rainfall:    p.Rainfall.Float64(),
	}
}

// ParsePredictRequest reads one JSON object from dec and validates it. The
// returned error is a decode error or a *validation.RequestValidationError
// listing every missing or non-numeric field.
func ParsePredictRequest(dec *json.Decoder) (recommend.FeatureVector, error) {
	var req PredictRequest
	if err := dec.Decode(&req); err != nil {
		return recommend.FeatureVector{}, fmt.Errorf("invalid request body: %w", err)
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return recommend.FeatureVector{}, verr
	}
	return req.FeatureVector(), nil
}

// Predict handles POST /predict.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	log := logging.Ctx(r.Context())

	m := h.matcher.Load()
	if m == nil {
		respondError(w, http.StatusInternalServerError, ErrNotReady.Error())
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes)
	features, err := ParsePredictRequest(json.NewDecoder(body))
	if err != nil {
		metrics.RecordInvalidRequest()
		log.Debug().Str("error", logging.SanitizeValue(err.Error())).Msg("Rejected prediction request")
		status, msg := statusForError(err)
		respondError(w, status, msg)
		return
	}

	recs, err := m.Recommend(r.Context(), features)
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusNotFound {
			log.Warn().Msg("Prediction requested against an empty reference table")
		} else {
			log.Error().Err(err).Msg("Prediction failed")
		}
		respondError(w, status, msg)
		return
	}

	log.Debug().Int("recommendations", len(recs)).Str("top", recs[0].Crop).Msg("Prediction served")
	respondJSON(w, http.StatusOK, &PredictResponse{Recommendations: recs})
}
