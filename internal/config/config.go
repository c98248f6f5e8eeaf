// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container. Every source
// (defaults, file, environment, flags) is decoded into its own
// StructuredConfig and the layers are merged with mergo.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: the school timezone and logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Export holds report export settings.
	Export Export `envPrefix:"EXPORT_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: CONFIG. Flags: -c / --config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Timezone is the IANA name of the civil timezone booking days are
	// defined in (e.g. "Asia/Bangkok").
	// Env: APP_TIMEZONE
	Timezone string `env:"TIMEZONE"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the outbound remote API client.
type Adapter struct {
	// HTTPAddress is the URL of the spreadsheet-backed script endpoint.
	// A missing scheme defaults to https.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single remote call. Zero disables the client
	// deadline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite connection settings.
type DB struct {
	// DSN is the SQLite file the session is persisted in.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the booking cache is silently refreshed
	// while the client is watching.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Export holds report export settings.
type Export struct {
	// Dir is the directory spreadsheet reports are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// defaults returns the built-in lowest-priority layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Timezone: "Asia/Bangkok",
			LogLevel: "info",
		},
		Storage: Storage{DB: DB{DSN: "avbooking.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
		Export:  Export{Dir: "."},
	}
}
