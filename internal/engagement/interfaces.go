// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engagement binds the engagement backend endpoints to typed Go
// calls. Every call goes through an [apiclient.Requester], so it inherits the
// client's timeout, retry and session behaviour; the bindings themselves only
// build paths and decode JSON.
package engagement

import (
	"context"
	"time"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engagement_service_mock.go -package=mock

// Service is the engagement backend surface.
type Service interface {
	// Channels lists the monitored channels.
	Channels(ctx context.Context, opts ...apiclient.CallOption) ([]models.Channel, error)

	// AddChannel registers a channel for monitoring and returns the record
	// the backend created.
	AddChannel(ctx context.Context, ch models.Channel, opts ...apiclient.CallOption) (models.Channel, error)

	// DailySentiment returns the sentiment of channelID for the given day.
	// A zero date leaves the day to the backend.
	DailySentiment(ctx context.Context, channelID string, date time.Time, opts ...apiclient.CallOption) (models.DailySentiment, error)

	// WeeklyTrends returns the sentiment summary of the current week.
	WeeklyTrends(ctx context.Context, opts ...apiclient.CallOption) (models.WeeklyTrends, error)

	// BurnoutWarnings returns the current burnout risk records.
	BurnoutWarnings(ctx context.Context, opts ...apiclient.CallOption) ([]models.BurnoutWarning, error)
}
