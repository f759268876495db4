// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in defaults from defaultConfig()
//  2. Config File: optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after loading and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Security SecurityConfig `koanf:"security"`
	Contact  ContactConfig  `koanf:"contact"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`

	// Timeout bounds reading a request and writing its response.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps request bodies on POST endpoints.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Dataset drivers.
const (
	DriverCSV    = "csv"
	DriverDuckDB = "duckdb"
)

// DatasetConfig locates the reference table loaded at startup.
type DatasetConfig struct {
	// Path to the dataset file. CSV for either driver; Parquet with duckdb.
	Path string `koanf:"path"`

	// Driver is "csv" (default) or "duckdb".
	Driver string `koanf:"driver"`
}

// CatalogConfig holds crop catalog settings.
type CatalogConfig struct {
	// Path to an optional YAML file overriding crop images and descriptions.
	Path string `koanf:"path"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ContactConfig controls the contact inbox relay.
type ContactConfig struct {
	// Enabled starts the in-process relay. When false, submissions are
	// still logged and acknowledged.
	Enabled bool `koanf:"enabled"`

	// Topic is the in-process topic submissions are published to.
	Topic string `koanf:"topic"`

	// Buffer is the GoChannel output buffer size.
	Buffer int64 `koanf:"buffer"`

	// RedactEmail masks the local part of submitted addresses in logs.
	RedactEmail bool `koanf:"redact_email"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
