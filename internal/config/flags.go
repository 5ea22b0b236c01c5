package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the persistent command-line flags of the pulse CLI.
type Flags struct {
	APIURL          string
	SessionDSN      string
	LogLevel        string
	LogFile         string
	ConfigPath      string
	RefreshInterval time.Duration
}

// Register binds the flags to fs.
//
// Flags:
//
//	--api-url           backend base URL
//	--session-db        session store SQLite file (":memory:" for none)
//	--log-level         log level (debug, info, warn, error)
//	--log-file          write logs to this file instead of stderr
//	-c/--config         json file path with configs
//	--refresh-interval  dashboard refresh period (e.g. "1m")
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.APIURL, "api-url", "", "Backend base URL")
	fs.StringVar(&f.SessionDSN, "session-db", "", "Session store SQLite file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path (default stderr)")
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path")
	fs.DurationVar(&f.RefreshInterval, "refresh-interval", 0, "Dashboard refresh interval (e.g. 1m)")
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		API:          API{URL: f.APIURL},
		Session:      Session{DSN: f.SessionDSN},
		Log:          Log{Level: f.LogLevel, File: f.LogFile},
		Dashboard:    Dashboard{RefreshInterval: f.RefreshInterval},
		JSONFilePath: f.ConfigPath,
	}
}
