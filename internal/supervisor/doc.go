// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package supervisor provides process supervision for Cropwise using suture v4.

The tree has two layers:

	RootSupervisor ("cropwise")
	├── MessagingSupervisor ("messaging-layer")
	│   └── contact.Relay (if contact.enabled)
	└── APISupervisor ("api-layer")
	    └── services.HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes to an *slog.Logger; cmd/server passes
logging.NewSlogLogger() so the events land in the zerolog stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(relay)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

On cancellation every service receives a canceled context and has
ShutdownTimeout to return; UnstoppedServiceReport lists any that did not.
*/
package supervisor
