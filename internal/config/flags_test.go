package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags_Register(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"--api-url", "http://localhost:9000",
				"--session-db", "/tmp/s.db",
				"--log-level", "debug",
				"--log-file", "/tmp/pulse.log",
				"-c", "/path/to/config.json",
				"--refresh-interval", "1m",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:9000", cfg.API.URL)
				assert.Equal(t, "/tmp/s.db", cfg.Session.DSN)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/tmp/pulse.log", cfg.Log.File)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, time.Minute, cfg.Dashboard.RefreshInterval)
			},
		},
		{
			name: "config long form",
			args: []string{"--config", "/etc/pulse.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/pulse.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flags
			fs := pflag.NewFlagSet("pulse", pflag.ContinueOnError)
			f.Register(fs)

			require.NoError(t, fs.Parse(tt.args))
			tt.validate(t, f.toConfig())
		})
	}
}

func TestFlags_InvalidDuration(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("pulse", pflag.ContinueOnError)
	f.Register(fs)

	assert.Error(t, fs.Parse([]string{"--refresh-interval", "often"}))
}
