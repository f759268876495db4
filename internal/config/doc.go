// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

/*
Package config provides layered configuration loading for Cropwise.

Values come from built-in defaults, an optional YAML file and environment
variables, in increasing order of precedence (Koanf v2).

# Config File

The first of CONFIG_PATH, config.yaml, config.yml and
/etc/cropwise/config.yaml that exists is loaded:

	server:
	  port: 10000
	dataset:
	  path: data/crops.csv
	  driver: csv
	security:
	  cors_origins: ["https://example.org"]
	  rate_limit_reqs: 60
	  rate_limit_window: 1m

# Environment Variables

HTTP Server:
  - PORT: Listen port, wins over HTTP_PORT (default: 10000)
  - HTTP_PORT, HTTP_HOST: Listen port and bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)
  - HTTP_MAX_BODY_BYTES: Request body cap (default: 1MiB)

Reference Data:
  - DATASET_PATH: Dataset file (default: data/crops.csv)
  - DATASET_DRIVER: csv or duckdb (default: csv)
  - CATALOG_PATH: Optional YAML catalog overrides

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW: Per-IP budget (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off

Contact Inbox:
  - CONTACT_ENABLED, CONTACT_TOPIC, CONTACT_BUFFER, CONTACT_REDACT_EMAIL

Observability:
  - METRICS_ENABLED, METRICS_PATH
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
