// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal dashboard of pulse: one spinner
// per section while it loads, periodic refreshes in the background, a
// refresh key and an error overlay.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/workers"
)

// ErrUserQuit is returned by Run when the user left with the quit key.
var ErrUserQuit = errors.New("user quit")

// Dashboard runs the interactive dashboard. Its Progress method is the
// dashboard.ProgressFunc of the loader it displays, so construct the
// Dashboard first and pass Progress to dashboard.WithProgress.
type Dashboard struct {
	events chan tea.Msg
	done   chan struct{}
	logger *logger.Logger
}

// NewDashboard returns an idle Dashboard.
func NewDashboard(log *logger.Logger) *Dashboard {
	return &Dashboard{
		events: make(chan tea.Msg, 16),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Progress forwards a loader's loading-state transition to the screen. It
// blocks while the screen is busy and returns at once after Run has ended.
func (d *Dashboard) Progress(section dashboard.Section, loading bool) {
	d.send(sectionMsg{section: section, loading: loading})
}

func (d *Dashboard) sink(snap dashboard.Snapshot, err error) {
	d.send(refreshedMsg{snap: snap, err: err})
}

func (d *Dashboard) send(msg tea.Msg) {
	select {
	case d.events <- msg:
	case <-d.done:
	}
}

// Run shows the dashboard until the user quits or ctx ends. loader is
// reloaded every interval by a workers.DashboardRefresher and on demand
// with the refresh key. A Dashboard can be run once.
func (d *Dashboard) Run(ctx context.Context, loader SnapshotLoader, interval time.Duration, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	defer func() {
		close(d.done)
		cancel()
		<-stopped
	}()

	refresher := workers.NewDashboardRefresher(loader, interval, d.sink, d.logger)
	go func() {
		defer close(stopped)
		workers.New(refresher).Run(ctx)
	}()

	model := newDashboardModel(ctx, loader, d.events)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			// interrupted by the caller's context
			return nil
		}
		return err
	}

	if result, ok := final.(dashboardModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
