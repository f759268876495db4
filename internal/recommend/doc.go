// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package recommend ranks crops by how closely their recorded growing
// conditions match a query.
//
// # Scoring
//
// Each reference row is scored against the query with a weighted L1
// distance:
//
//	score = |dN| + |dP| + |dK| + |dTemperature| + |dHumidity|
//	      + 5*|dPH| + |dRainfall|/2
//
// Rows are stable-sorted by ascending score and walked in order. The first
// TopK distinct crop names win; a crop's later rows are skipped, so only
// its best row determines its rank.
//
// # Usage
//
//	table := recommend.NewTable(rows)
//	m := recommend.NewMatcher(table, recommend.DefaultCatalog(),
//	    recommend.WithRecorder(metrics.RecommendRecorder{}),
//	)
//
//	recs, err := m.Recommend(ctx, recommend.FeatureVector{N: 90, P: 42, ...})
//	if errors.Is(err, recommend.ErrNoMatches) {
//	    // empty table
//	}
//
// # Thread Safety
//
// Table, Catalog and Matcher are immutable after construction. Scoring
// works on a request-local copy, so any number of goroutines may call
// Rank and Recommend concurrently.
//
// This package has no dependencies on other internal packages; metrics
// are reported through the Recorder interface.
package recommend
