// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package metrics provides Prometheus instrumentation for Cropwise.

All collectors are registered with the default registry through promauto
and exposed by the HTTP API at /metrics.

Metric Families:

  - api_requests_total, api_request_duration_seconds, api_active_requests:
    HTTP traffic by method, route pattern and status code
  - api_rate_limit_hits_total: requests rejected with 429
  - recommend_requests_total{outcome}, recommend_scoring_duration_seconds:
    ranking outcomes and cost
  - reference_table_rows, reference_table_crops,
    reference_table_load_duration_seconds: the loaded dataset
  - contact_messages_total{stage}: contact inbox pipeline
  - app_info: version labels

Usage:

	matcher := recommend.NewMatcher(table, catalog,
	    recommend.WithRecorder(metrics.RecommendRecorder{}),
	)

	metrics.RecordContactMessage(metrics.ContactStageReceived)

Example PromQL:

	# p99 request latency for predictions
	histogram_quantile(0.99, rate(api_request_duration_seconds_bucket{endpoint="/predict"}[5m]))

	# share of predictions rejected by validation
	rate(recommend_requests_total{outcome="invalid"}[5m]) / rate(recommend_requests_total[5m])
*/
package metrics
