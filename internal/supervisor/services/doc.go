// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService translates http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful shutdown. The contact relay implements
// suture.Service itself and needs no wrapper.
package services
