// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dashboard assembles the engagement dashboard: channels, weekly
// trends and burnout warnings, loaded one after another so that progress can
// be reported per section.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/engagement"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/models"
)

// Section names one part of the dashboard.
type Section string

const (
	SectionChannels Section = "channels"
	SectionTrends   Section = "trends"
	SectionWarnings Section = "warnings"
)

// Overall bounds of each dashboard call, retries included.
const (
	ChannelsTimeout = 15 * time.Second
	TrendsTimeout   = 20 * time.Second
	WarningsTimeout = 15 * time.Second
)

// ProgressFunc is told when a section starts (loading == true) and finishes
// (loading == false) loading.
type ProgressFunc func(section Section, loading bool)

// Snapshot is one fully loaded dashboard.
type Snapshot struct {
	Channels []models.Channel
	Trends   models.WeeklyTrends
	Warnings []models.BurnoutWarning

	// UpdatedAt is the time the last section finished loading.
	UpdatedAt time.Time
}

// Loader loads dashboard snapshots.
type Loader struct {
	api      engagement.Service
	logger   *logger.Logger
	progress ProgressFunc
	now      func() time.Time

	channelsTimeout time.Duration
	trendsTimeout   time.Duration
	warningsTimeout time.Duration
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithProgress registers fn to receive loading-state transitions.
func WithProgress(fn ProgressFunc) LoaderOption {
	return func(l *Loader) { l.progress = fn }
}

// NewLoader returns a Loader reading from api.
func NewLoader(api engagement.Service, log *logger.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		api:             api,
		logger:          log,
		now:             time.Now,
		channelsTimeout: ChannelsTimeout,
		trendsTimeout:   TrendsTimeout,
		warningsTimeout: WarningsTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches channels, then weekly trends, then burnout warnings, each under
// its own overall timeout. The first failure aborts the load; the returned
// error wraps the request error, so Describe and errors.Is work on it.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	log := l.logger.GetChildLogger()
	log.Debug().Msg("fetching dashboard data")

	l.report(SectionChannels, true)
	l.report(SectionTrends, true)
	l.report(SectionWarnings, true)

	var snap Snapshot

	channels, err := l.api.Channels(ctx, apiclient.WithCallTimeout(l.channelsTimeout))
	if err != nil {
		return Snapshot{}, l.fail(SectionChannels, err)
	}
	l.report(SectionChannels, false)
	log.Debug().Int("count", len(channels)).Msg("channels loaded")

	trends, err := l.api.WeeklyTrends(ctx, apiclient.WithCallTimeout(l.trendsTimeout))
	if err != nil {
		return Snapshot{}, l.fail(SectionTrends, err)
	}
	l.report(SectionTrends, false)
	log.Debug().Int("total_messages", trends.TotalMessages).Msg("weekly trends loaded")

	warnings, err := l.api.BurnoutWarnings(ctx, apiclient.WithCallTimeout(l.warningsTimeout))
	if err != nil {
		return Snapshot{}, l.fail(SectionWarnings, err)
	}
	l.report(SectionWarnings, false)
	log.Debug().Int("count", len(warnings)).Msg("burnout warnings loaded")

	snap.Channels = channels
	if snap.Channels == nil {
		snap.Channels = []models.Channel{}
	}
	snap.Trends = trends
	snap.Warnings = warnings
	if snap.Warnings == nil {
		snap.Warnings = []models.BurnoutWarning{}
	}
	snap.UpdatedAt = l.now()

	log.Info().Msg("dashboard data updated successfully")
	return snap, nil
}

// Sentiment loads the daily sentiment of one channel for the chart view.
func (l *Loader) Sentiment(ctx context.Context, channelID string, date time.Time) (models.DailySentiment, error) {
	return l.api.DailySentiment(ctx, channelID, date)
}

func (l *Loader) report(section Section, loading bool) {
	if l.progress != nil {
		l.progress(section, loading)
	}
}

func (l *Loader) fail(section Section, err error) error {
	l.logger.Error().Err(err).Str("section", string(section)).Msg("error fetching dashboard data")
	return fmt.Errorf("load %s: %w", section, err)
}
