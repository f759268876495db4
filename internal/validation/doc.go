// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package validation provides request validation using go-playground/validator v10.
//
// It holds a thread-safe singleton validator that reports fields by their
// JSON names, a "finite" tag for numeric inputs, and the Number type that
// accepts both JSON numbers and numeric strings.
//
// Example usage:
//
//	type PredictRequest struct {
//	    N  validation.Number `json:"N"  validate:"required,finite"`
//	    PH validation.Number `json:"ph" validate:"required,finite"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    // "N is required; ph must be a number"
//	    respondError(w, http.StatusInternalServerError, verr.Error())
//	    return
//	}
//
// Messages are joined with "; " in field declaration order.
package validation
