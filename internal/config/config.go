// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from command-line
// flags, environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the backend location.
	API API `envPrefix:"PULSE_API_"`

	// Session holds the persisted session store settings.
	Session Session `envPrefix:"PULSE_SESSION_"`

	// Log holds logging settings.
	Log Log `envPrefix:"PULSE_LOG_"`

	// Dashboard holds dashboard refresh settings.
	Dashboard Dashboard `envPrefix:"PULSE_DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the location of the engagement backend.
type API struct {
	// URL is the backend base URL (e.g. "http://localhost:8000").
	// Env: PULSE_API_URL
	URL string `env:"URL"`
}

// Session holds the settings of the persisted session store.
type Session struct {
	// DSN is the SQLite database file that keeps the token and user
	// profile. ":memory:" keeps the session for the life of the process only.
	// Env: PULSE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// Level is the zerolog level name ("debug", "info", ...).
	// Env: PULSE_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, redirects logs from stderr to the given file.
	// Env: PULSE_LOG_FILE
	File string `env:"FILE"`
}

// Dashboard holds dashboard settings.
type Dashboard struct {
	// RefreshInterval is the default period of `pulse dashboard --watch`.
	// Env: PULSE_DASHBOARD_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied to fields that no source has set.
const (
	DefaultAPIURL          = "http://localhost:8000"
	DefaultSessionDSN      = "pulse-session.db"
	DefaultLogLevel        = "info"
	DefaultRefreshInterval = 5 * time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API:       API{URL: DefaultAPIURL},
		Session:   Session{DSN: DefaultSessionDSN},
		Log:       Log{Level: DefaultLogLevel},
		Dashboard: Dashboard{RefreshInterval: DefaultRefreshInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources (flags, then environment, then the JSON file, then
// defaults).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
