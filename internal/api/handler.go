// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/contact"
	"github.com/tomtom215/cropwise/internal/recommend"
)

// DefaultMaxBodyBytes caps POST bodies when HandlerConfig leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// ContactPublisher hands a contact submission to the relay. Errors are
// logged by the handler and never change the response.
type ContactPublisher interface {
	Publish(ctx context.Context, m contact.Message) error
}

// HandlerConfig holds per-request limits and logging options.
type HandlerConfig struct {
	MaxBodyBytes int64
	RedactEmail  bool
}

// HandlerConfigFromConfig extracts handler settings from the service config.
func HandlerConfigFromConfig(cfg *config.Config) HandlerConfig {
	return HandlerConfig{
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		RedactEmail:  cfg.Contact.RedactEmail,
	}
}

// Handler serves the Cropwise endpoints.
//
// Thread Safety: all methods are safe for concurrent use. The matcher may be
// attached after the server starts; until then /health/ready reports 503.
type Handler struct {
	matcher   atomic.Pointer[recommend.Matcher]
	contact   ContactPublisher
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a handler. matcher may be nil and attached later with
// SetMatcher.
func NewHandler(matcher *recommend.Matcher, cfg HandlerConfig) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &Handler{
		config:    cfg,
		startTime: time.Now(),
	}
	if matcher != nil {
		h.matcher.Store(matcher)
	}
	return h
}

// SetMatcher attaches the matcher used by /predict.
func (h *Handler) SetMatcher(m *recommend.Matcher) {
	h.matcher.Store(m)
}

// SetContactPublisher sets the optional publisher for contact submissions.
// Should be called once during startup; nil disables publishing.
func (h *Handler) SetContactPublisher(p ContactPublisher) {
	h.contact = p
}
