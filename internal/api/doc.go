// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package api provides the HTTP layer for Cropwise.

Routes:

	GET  /              plain-text liveness banner
	GET  /health/live   process liveness
	GET  /health/ready  503 until a reference table is attached
	POST /predict       top three crops for seven soil and climate readings
	POST /contact       contact-form acknowledgement
	GET  /metrics       Prometheus exposition (when enabled)

Middleware Stack:

Every request passes through, in order:

  - RequestIDWithLogging: X-Request-ID header plus request and correlation
    IDs in the logging context
  - chi RealIP and Recoverer
  - go-chi/cors
  - PrometheusMetrics (from internal/middleware)

/predict and /contact are additionally rate limited per client IP with
go-chi/httprate. A client over budget receives 429 {"error": "Too many requests"}.

Error Responses:

Failures carry a single "error" string. Invalid or missing fields and
malformed bodies map to 500, matching the behavior clients already depend on.
An empty reference table maps to 404 {"error": "No matching crops found."}.

Usage:

	handler := api.NewHandler(matcher, api.HandlerConfigFromConfig(cfg))
	handler.SetContactPublisher(inbox)
	router := api.NewRouter(handler, api.RouterConfigFromConfig(cfg))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Handler()}
*/
package api
