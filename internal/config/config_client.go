package config

import (
	"fmt"
	"time"
)

// ClientAPI holds the backend settings used by the request layer.
type ClientAPI struct {
	// BaseURL is the backend base URL every request path is appended to.
	BaseURL string
}

// ClientSession holds the session store settings.
type ClientSession struct {
	// DSN is the SQLite file (or ":memory:") backing the session store.
	DSN string
}

// ClientLog holds logging settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientDashboard holds dashboard settings.
type ClientDashboard struct {
	// RefreshInterval is the default period of the refresh worker.
	RefreshInterval time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	API       ClientAPI
	Session   ClientSession
	Log       ClientLog
	Dashboard ClientDashboard
}

// GetClientConfig builds and validates the client configuration from flags,
// environment, the optional JSON file and defaults.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API:       ClientAPI{BaseURL: cfg.API.URL},
		Session:   ClientSession{DSN: cfg.Session.DSN},
		Log:       ClientLog{Level: cfg.Log.Level, File: cfg.Log.File},
		Dashboard: ClientDashboard{RefreshInterval: cfg.Dashboard.RefreshInterval},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
