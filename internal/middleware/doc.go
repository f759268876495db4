// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package middleware provides HTTP instrumentation middleware.

PrometheusMetrics records request totals, latency histograms and in-flight
requests for every route. It is written against http.HandlerFunc and adapted
to chi's func(http.Handler) http.Handler signature in the API router:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Endpoints are labelled with the matched chi route pattern ("/predict",
"/health/ready"). Requests that match no route share the "unmatched" label.
*/
package middleware
