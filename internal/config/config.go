// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-field-sync agent. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device token, the
	// transport hash key, the at-rest seal secret, and logging options.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local durable buffer.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the central API endpoint and outbound call settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Facade holds settings for the loopback HTTP server the device UI
	// talks to.
	Facade Facade `envPrefix:"FACADE_"`

	// Workers holds configuration for the background loops: connectivity
	// probing and queue draining.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control identity,
// transport integrity, at-rest sealing, and logging.
type App struct {
	// DeviceToken is the JWT issued by the central API when the device was
	// enrolled. Attached as a Bearer header on every outbound call. The
	// agent reads its claims but never verifies or persists it.
	// Env: APP_DEVICE_TOKEN
	DeviceToken string `env:"DEVICE_TOKEN"`

	// HashKey is the HMAC key used to sign outbound payload bodies
	// (the X-Payload-Digest header). Must match the central API's key.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// SealSecret is the secret the at-rest payload sealing key is derived
	// from. Buffered business payloads are unreadable without it.
	// Env: APP_SEAL_SECRET
	SealSecret string `env:"SEAL_SECRET"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path log output is appended to in TUI mode, where
	// stdout belongs to the status screen. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TUIMode runs the interactive status screen instead of the plain
	// daemon foreground mode.
	// Env: APP_TUI_MODE
	TUIMode bool `env:"TUI_MODE"`

	// Version is the semantic version string of the running agent
	// (e.g. "1.2.3"). Exposed via the /api/v1/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local durable buffer.
type Storage struct {
	// DB holds the buffer database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the buffer database.
type DB struct {
	// DSN selects and configures the driver: a file path or file: URI
	// opens SQLite (the device-local default), a postgres:// URI opens
	// PostgreSQL (shared site-gateway deployments).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Remote holds settings for the outbound connection to the central API.
type Remote struct {
	// Address is the base URL of the central API
	// (e.g. "https://api.example.com").
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound call. A hung call against a
	// dead link must fail within it so a drain pass can halt.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Facade holds network settings for the loopback HTTP server.
type Facade struct {
	// HTTPAddress is the TCP address the facade listens on, in
	// "host:port" format. Defaults to loopback; the facade carries
	// unauthenticated local traffic and must not be exposed.
	// Env: FACADE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Workers holds configuration for the agent's background loops.
type Workers struct {
	// ProbeInterval is how often the connectivity monitor probes the
	// central API's health endpoint.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// DrainInterval is the fallback cadence of the reconciler's periodic
	// drain trigger. Connectivity edges and enqueues trigger draining
	// earlier; the ticker only catches anything those signals missed.
	// Env: WORKERS_DRAIN_INTERVAL
	DrainInterval time.Duration `env:"DRAIN_INTERVAL"`

	// MaxRetries is the retry ceiling for a queue entry rejected by the
	// central API. At the ceiling the entry is parked as failed.
	// Env: WORKERS_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// TokenWarnWindow is how close to its exp claim the device token may
	// get before the agent starts logging expiry warnings.
	// Env: WORKERS_TOKEN_WARN_WINDOW
	TokenWarnWindow time.Duration `env:"TOKEN_WARN_WINDOW"`
}

// defaultConfig is the lowest-priority configuration layer: values that make
// a bare `agent -d buffer.db -remote-address https://... ` invocation work.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Facade: Facade{
			HTTPAddress: "127.0.0.1:8750",
		},
		Remote: Remote{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			ProbeInterval:   30 * time.Second,
			DrainInterval:   5 * time.Minute,
			MaxRetries:      5,
			TokenWarnWindow: 72 * time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the agent configuration
// from all available sources in the following priority order (earlier
// sources win for any given field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
