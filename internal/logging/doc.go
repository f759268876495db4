// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package logging provides the process-wide zerolog logger for Cropwise.
//
// Output is JSON by default and a human-readable console format when
// configured. The package also carries request/correlation ID helpers,
// an slog.Handler bridge for libraries that log through log/slog (the
// suture supervisor tree), and helpers for writing user-supplied values
// to the log safely.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("rows", table.Len()).Msg("Reference table loaded")
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Prediction rejected")
//
// # User Input
//
// Contact form fields are written through SanitizeValue, which escapes
// control characters:
//
//	logging.Info().
//	    Str("name", logging.SanitizeValue(name)).
//	    Str("email", logging.SanitizeEmail(email)).
//	    Msg("Contact message received")
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex. Init may be called again at
// any time, typically once after configuration has been loaded.
package logging
