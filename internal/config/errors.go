package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates a missing or malformed backend base URL.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidSessionConfigs indicates an empty session store DSN.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidDashboardConfigs indicates a zero or negative refresh
	// interval.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
)
