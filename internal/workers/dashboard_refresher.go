// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
)

// SnapshotLoader loads one dashboard snapshot.
type SnapshotLoader interface {
	Load(ctx context.Context) (dashboard.Snapshot, error)
}

// SnapshotSink receives the outcome of every refresh. Exactly one of snap
// and err is meaningful.
type SnapshotSink func(snap dashboard.Snapshot, err error)

// DashboardRefresher reloads the dashboard immediately and then once per
// interval until its context ends. A failed load is handed to the sink and
// the next tick tries again.
type DashboardRefresher struct {
	loader   SnapshotLoader
	sink     SnapshotSink
	interval time.Duration
	logger   *logger.Logger
}

// NewDashboardRefresher returns a refresher. interval must be positive.
func NewDashboardRefresher(loader SnapshotLoader, interval time.Duration, sink SnapshotSink, log *logger.Logger) *DashboardRefresher {
	return &DashboardRefresher{
		loader:   loader,
		sink:     sink,
		interval: interval,
		logger:   log,
	}
}

func (r *DashboardRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("dashboard refresher started")
	defer r.logger.Info().Msg("dashboard refresher stopped")

	for {
		r.refresh(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *DashboardRefresher) refresh(ctx context.Context) {
	snap, err := r.loader.Load(ctx)
	if ctx.Err() != nil {
		// shutting down, the result is stale
		return
	}
	if err != nil {
		r.logger.Warn().Err(err).Msg("dashboard refresh failed")
	}
	r.sink(snap, err)
}
