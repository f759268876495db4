// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package main is the entry point for the Cropwise HTTP service.

Startup sequence:

 1. Load configuration (defaults, optional config.yaml, environment)
 2. Initialize the global zerolog logger
 3. Load the reference table; a missing or malformed dataset is fatal
 4. Load the crop catalog (built-in, optionally overridden from YAML)
 5. Build the matcher, API handler and chi router
 6. Start the contact relay when contact.enabled is set
 7. Run the suture supervisor tree until SIGINT or SIGTERM

Environment variables of note:

	PORT / HTTP_PORT    listen port (default 10000)
	HTTP_HOST           listen host (default 0.0.0.0)
	DATASET_PATH        reference table (default data/crops.csv)
	DATASET_DRIVER      csv or duckdb
	CATALOG_PATH        YAML catalog override
	CONTACT_ENABLED     start the contact relay
	LOG_LEVEL           trace, debug, info, warn, error
	CONFIG_PATH         explicit config file

Build with a version string:

	go build -ldflags "-X main.version=1.2.0" ./cmd/server
*/
package main
