// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package recommend

import "errors"

// TopK is the number of distinct crops returned per request.
const TopK = 3

// ErrNoMatches is returned when the reference table yields no candidates.
var ErrNoMatches = errors.New("no matching crops found")

// ReferenceRow is one observation in the reference table: a crop and the
// soil/climate conditions it was recorded under. Many rows may share a crop.
type ReferenceRow struct {
	Crop        string  `json:"crop" yaml:"crop"`
	N           float64 `json:"N" yaml:"N"`
	P           float64 `json:"P" yaml:"P"`
	K           float64 `json:"K" yaml:"K"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	PH          float64 `json:"ph" yaml:"ph"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall"`
}

// FeatureVector is the seven numeric inputs of a query.
type FeatureVector struct {
	N           float64 `json:"N" yaml:"N" validate:"finite"`
	P           float64 `json:"P" yaml:"P" validate:"finite"`
	K           float64 `json:"K" yaml:"K" validate:"finite"`
	Temperature float64 `json:"temperature" yaml:"temperature" validate:"finite"`
	Humidity    float64 `json:"humidity" yaml:"humidity" validate:"finite"`
	PH          float64 `json:"ph" yaml:"ph" validate:"finite"`
	Rainfall    float64 `json:"rainfall" yaml:"rainfall" validate:"finite"`
}

// ScoredRow is a reference row with its distance to a query.
// Index is the row's position in the table.
type ScoredRow struct {
	ReferenceRow `yaml:",inline"`
	Score        float64 `json:"score" yaml:"score"`
	Index        int     `json:"index" yaml:"index"`
}

// Recommendation is one crop in a response, enriched from the catalog.
type Recommendation struct {
	Crop        string `json:"crop"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Weights are per-feature multipliers applied to absolute differences.
type Weights struct {
	N           float64
	P           float64
	K           float64
	Temperature float64
	Humidity    float64
	PH          float64
	Rainfall    float64
}

// DefaultWeights weights pH by 5 and rainfall by 1/2; every other feature counts once.
var DefaultWeights = Weights{
	N:           1,
	P:           1,
	K:           1,
	Temperature: 1,
	Humidity:    1,
	PH:          5,
	Rainfall:    0.5,
}
