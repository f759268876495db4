// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/cropwise/internal/config"
	"github.com/tomtom215/cropwise/internal/logging"
	"github.com/tomtom215/cropwise/internal/metrics"
	"github.com/tomtom215/cropwise/internal/supervisor"
	"github.com/tomtom215/cropwise/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// The package default logger (JSON, info, stderr) is active until Init.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().Str("version", version).Msg("Starting Cropwise")
	metrics.SetAppInfo(version, runtime.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	matcher, err := newMatcher(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load reference data")
	}

	application, err := newApp(cfg, matcher)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer func() {
		if err := application.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close contact pub/sub")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if application.relay != nil {
		tree.AddMessagingService(application.relay)
		logging.Info().Str("topic", cfg.Contact.Topic).Msg("Contact relay enabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(application.server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree terminated unexpectedly")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to get unstopped service report")
	}
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
