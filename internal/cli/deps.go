package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/app"
	"github.com/MKhiriev/engagement-pulse/internal/auth"
	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/internal/engagement"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/session"
)

// deps holds the wiring shared by the backend commands.
type deps struct {
	cfg    *config.ClientConfig
	logger *logger.Logger

	store      *session.SQLiteStore
	client     *apiclient.Client
	engagement engagement.Service
	auth       *auth.Service
	dashboard  *dashboard.Loader

	out    io.Writer
	errOut io.Writer

	closed bool
}

func newDeps(ctx context.Context, flags *config.Flags, out, errOut io.Writer) (*deps, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var log *logger.Logger
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("pulse", cfg.Log.Level, cfg.Log.File)
	} else {
		log = logger.NewLogger("pulse", cfg.Log.Level)
	}

	store, err := session.NewSQLiteStore(ctx, cfg.Session, log)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("open session store: %w", err)
	}

	a := &deps{cfg: cfg, logger: log, store: store, out: out, errOut: errOut}

	client, err := apiclient.New(cfg.API, log, apiclient.WithSession(store, a.sessionInvalidated))
	if err != nil {
		_ = store.Close()
		_ = log.Close()
		return nil, err
	}

	a.client = client
	a.engagement = engagement.NewService(client, log)
	a.auth = auth.NewService(client, store, log)
	a.dashboard = dashboard.NewLoader(a.engagement, log, dashboard.WithProgress(a.progress))

	log.Debug().Str("api", client.BaseURL()).Str("session", cfg.Session.DSN).Msg("pulse ready")
	return a, nil
}

// sessionInvalidated stands in for the browser redirect to the login page.
func (a *deps) sessionInvalidated(_ context.Context, loginPath string) {
	fmt.Fprintln(a.errOut, warnStyle.Render(app.MsgSessionExpired+" ("+loginPath+"): "+app.MsgLoginHint))
}

func (a *deps) progress(section dashboard.Section, loading bool) {
	if loading {
		return
	}
	fmt.Fprintln(a.errOut, faintStyle.Render("✓ "+string(section)+" loaded"))
}

// Close releases the session store and the log file. It may be called more
// than once.
func (a *deps) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return errors.Join(a.store.Close(), a.logger.Close())
}
