// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/cropwise/internal/api"
	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/contact"
	"github.com/tomtom215/cropwise/internal/dataset"
	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
	"github.com/tomtom215/cropwise/internal/recommend"
)

// app holds the components assembled from configuration.
type app struct {
	handler *api.Handler
	router  *api.Router
	server  *http.Server
	relay   *contact.Relay
	pubsub  *gochannel.GoChannel
}

// Close releases the contact pub/sub, if one was created.
func (a *app) Close() error {
	if a.pubsub == nil {
		return nil
	}
	return a.pubsub.Close()
}

// newMatcher loads the reference table and catalog named in cfg.
func newMatcher(ctx context.Context, cfg *config.Config) (*recommend.Matcher, error) {
	table, err := dataset.Load(ctx, cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("load reference table: %w", err)
	}

	catalog := recommend.DefaultCatalog()
	if cfg.Catalog.Path != "" {
		catalog, err = recommend.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load crop catalog: %w", err)
		}
		logging.Info().
			Str("path", cfg.Catalog.Path).
			Int("entries", catalog.Len()).
			Msg("Crop catalog override loaded")
	}

	return recommend.NewMatcher(table, catalog,
		recommend.WithRecorder(metrics.RecommendRecorder{}),
		recommend.WithLogger(logging.WithComponent("matcher")),
	), nil
}

// newApp wires the HTTP surface and, when enabled, the contact relay.
func newApp(cfg *config.Config, matcher *recommend.Matcher) (*app, error) {
	a := &app{handler: api.NewHandler(matcher, api.HandlerConfigFromConfig(cfg))}

	if cfg.Contact.Enabled {
		wmLogger := logging.NewWatermillAdapterWithLogger(logging.WithComponent("contact"))
		a.pubsub = contact.NewPubSub(cfg.Contact.Buffer, wmLogger)

		inbox, err := contact.NewInbox(a.pubsub, cfg.Contact.Topic, wmLogger)
		if err != nil {
			_ = a.pubsub.Close()
			return nil, fmt.Errorf("create contact inbox: %w", err)
		}
		relay, err := contact.NewRelay(a.pubsub, cfg.Contact.Topic, wmLogger,
			contact.WithEmailRedaction(cfg.Contact.RedactEmail))
		if err != nil {
			_ = a.pubsub.Close()
			return nil, fmt.Errorf("create contact relay: %w", err)
		}
		a.handler.SetContactPublisher(inbox)
		a.relay = relay
	}

	a.router = api.NewRouter(a.handler, api.RouterConfigFromConfig(cfg))
	a.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.router.Handler(),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}
	return a, nil
}
