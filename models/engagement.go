// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Channel is a monitored Slack channel as exposed by the engagement backend.
type Channel struct {
	// ChannelID is the backend (Slack) identifier of the channel, e.g. "C123".
	ChannelID string `json:"channel_id"`

	// ChannelName is the human-readable channel name without the leading '#'.
	ChannelName string `json:"channel_name"`

	// IsActive reports whether the backend currently collects messages for
	// this channel.
	IsActive bool `json:"is_active"`
}

// WeeklyTrends is the aggregated sentiment summary for the current week.
type WeeklyTrends struct {
	WeekStart     string   `json:"week_start"`
	WeekEnd       string   `json:"week_end"`
	TotalMessages int      `json:"total_messages"`
	PositiveTrend float64  `json:"positive_trend"`
	NegativeTrend float64  `json:"negative_trend"`
	NeutralTrend  float64  `json:"neutral_trend"`
	BurnoutRisk   string   `json:"burnout_risk"`
	Insights      []string `json:"insights"`
	Channels      []string `json:"channels"`
}

// BurnoutWarning is a backend-computed risk record for a single channel.
// The client treats its contents as opaque and only renders them.
type BurnoutWarning struct {
	ChannelID      string   `json:"channel_id"`
	ChannelName    string   `json:"channel_name"`
	RiskLevel      string   `json:"risk_level"`
	Indicators     []string `json:"indicators"`
	Recommendation string   `json:"recommendation"`
	Timestamp      string   `json:"timestamp"`
}

// DailySentiment is the per-channel, per-date sentiment payload. Its shape is
// owned by the backend; fields the client does not know about are kept in
// Extra so that nothing is lost on the way to the renderer.
type DailySentiment struct {
	ChannelID     string         `json:"channel_id"`
	Date          string         `json:"date"`
	TotalMessages int            `json:"total_messages"`
	Positive      float64        `json:"positive"`
	Negative      float64        `json:"negative"`
	Neutral       float64        `json:"neutral"`
	Extra         map[string]any `json:"-"`
}

// UnmarshalJSON decodes the known fields and collects the remaining keys in
// Extra.
func (d *DailySentiment) UnmarshalJSON(b []byte) error {
	type plain DailySentiment
	var known plain
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range []string{"channel_id", "date", "total_messages", "positive", "negative", "neutral"} {
		delete(all, k)
	}
	if len(all) > 0 {
		known.Extra = all
	}

	*d = DailySentiment(known)
	return nil
}
