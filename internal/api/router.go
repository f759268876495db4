// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/middleware"
)

// Rate limiter endpoint labels.
const (
	EndpointPredict = "/predict"
	EndpointContact = "/contact"
)

// RouterConfig controls optional routes and the middleware stack.
type RouterConfig struct {
	Middleware     *ChiMiddlewareConfig
	MetricsEnabled bool
	MetricsPath    string
}

// RouterConfigFromConfig builds a RouterConfig from the service config.
func RouterConfigFromConfig(cfg *config.Config) RouterConfig {
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return RouterConfig{
		Middleware:     mw,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	}
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	config        RouterConfig
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg.Middleware),
		config:        cfg,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Handler builds the HTTP handler.
func (router *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", router.handler.Home)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.With(router.chiMiddleware.RateLimit(EndpointPredict)).Post(EndpointPredict, router.handler.Predict)
	r.With(router.chiMiddleware.RateLimit(EndpointContact)).Post(EndpointContact, router.handler.Contact)

	if router.config.MetricsEnabled {
		r.Handle(router.config.MetricsPath, promhttp.Handler())
	}

	return r
}
