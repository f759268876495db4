// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of ranking requests by outcome",
		},
		[]string{"outcome"}, // "success", "no_matches", "canceled", "invalid"
	)

	RecommendScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_scoring_duration_seconds",
			Help:    "Time spent scoring the reference table for one request",
			Buckets: []float64{0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		},
	)

	// Reference Table Metrics
	ReferenceTableRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reference_table_rows",
			Help: "Number of rows in the loaded reference table",
		},
	)

	ReferenceTableCrops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reference_table_crops",
			Help: "Number of distinct crops in the loaded reference table",
		},
	)

	ReferenceTableLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reference_table_load_duration_seconds",
			Help:    "Duration of reference table loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "status"},
	)

	// Contact Inbox Metrics
	ContactMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact messages by pipeline stage",
		},
		[]string{"stage"}, // "received", "published", "publish_failed", "relayed"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// Contact pipeline stages.
const (
	ContactStageReceived      = "received"
	ContactStagePublished     = "published"
	ContactStagePublishFailed = "publish_failed"
	ContactStageRelayed       = "relayed"
)

// OutcomeInvalid labels requests rejected before scoring.
const OutcomeInvalid = "invalid"

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordReferenceTable records the shape of a freshly loaded table.
func RecordReferenceTable(driver string, rows, crops int, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		ReferenceTableRows.Set(float64(rows))
		ReferenceTableCrops.Set(float64(crops))
	}
	ReferenceTableLoadDuration.WithLabelValues(driver, status).Observe(duration.Seconds())
}

// RecordContactMessage increments the contact counter for stage.
func RecordContactMessage(stage string) {
	ContactMessagesTotal.WithLabelValues(stage).Inc()
}

// RecordInvalidRequest counts a ranking request rejected by validation.
func RecordInvalidRequest() {
	RecommendRequestsTotal.WithLabelValues(OutcomeInvalid).Inc()
}

// RecommendRecorder reports Matcher observations to Prometheus.
// The zero value is ready to use.
type RecommendRecorder struct{}

// ObserveRank implements recommend.Recorder.
func (RecommendRecorder) ObserveRank(outcome string, _ int, elapsed time.Duration) {
	RecommendRequestsTotal.WithLabelValues(outcome).Inc()
	RecommendScoringDuration.Observe(elapsed.Seconds())
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
