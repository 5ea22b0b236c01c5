// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/models"
)

const dashboardTitle = "Employee Engagement Pulse"

var sectionTitles = map[dashboard.Section]string{
	dashboard.SectionChannels: "Channels",
	dashboard.SectionTrends:   "Weekly trends",
	dashboard.SectionWarnings: "Burnout warnings",
}

// RenderSnapshot renders a loaded dashboard for plain output.
func RenderSnapshot(s dashboard.Snapshot) string {
	parts := []string{
		titleStyle.Render(dashboardTitle),
		faintStyle.Render("Last updated: " + s.UpdatedAt.Format("15:04:05")),
	}
	for _, section := range sectionOrder {
		parts = append(parts, sectionStyle.Render(sectionTitles[section]), renderSection(section, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderChannels renders the monitored channels, one per line.
func RenderChannels(channels []models.Channel) string {
	if len(channels) == 0 {
		return faintStyle.Render("No channels are monitored yet.")
	}

	var b strings.Builder
	for _, ch := range channels {
		status := faintStyle.Render("inactive")
		if ch.IsActive {
			status = "active"
		}
		fmt.Fprintf(&b, "#%-20s %-12s %s\n", ch.ChannelName, ch.ChannelID, status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSection(section dashboard.Section, s dashboard.Snapshot) string {
	switch section {
	case dashboard.SectionChannels:
		return RenderChannels(s.Channels)
	case dashboard.SectionTrends:
		return renderTrends(s.Trends)
	case dashboard.SectionWarnings:
		return renderWarnings(s.Warnings)
	default:
		return ""
	}
}

func renderRisk(level string) string {
	if s, ok := riskStyles[strings.ToLower(level)]; ok {
		return s.Render(level)
	}
	return level
}

func renderTrends(t models.WeeklyTrends) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week %s – %s\n", t.WeekStart, t.WeekEnd)
	fmt.Fprintf(&b, "Messages: %d\n", t.TotalMessages)
	fmt.Fprintf(&b, "Positive %.1f%%  Negative %.1f%%  Neutral %.1f%%\n",
		Percent(t.PositiveTrend), Percent(t.NegativeTrend), Percent(t.NeutralTrend))
	fmt.Fprintf(&b, "Burnout risk: %s", renderRisk(t.BurnoutRisk))
	for _, insight := range t.Insights {
		fmt.Fprintf(&b, "\n  • %s", insight)
	}
	return boxStyle.Render(b.String())
}

func renderWarnings(warnings []models.BurnoutWarning) string {
	if len(warnings) == 0 {
		return faintStyle.Render("No burnout warnings.")
	}

	var b strings.Builder
	for i, w := range warnings {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s #%s (%s)", renderRisk(w.RiskLevel), w.ChannelName, w.ChannelID)
		for _, ind := range w.Indicators {
			fmt.Fprintf(&b, "\n  - %s", ind)
		}
		if w.Recommendation != "" {
			fmt.Fprintf(&b, "\n  → %s", w.Recommendation)
		}
	}
	return b.String()
}

// Percent accepts both fractions (0.42) and percentages (42).
func Percent(v float64) float64 {
	if v <= 1 {
		return v * 100
	}
	return v
}
