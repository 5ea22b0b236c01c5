package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/models"
)

func TestRenderSnapshot(t *testing.T) {
	out := RenderSnapshot(testSnapshot())

	assert.Contains(t, out, dashboardTitle)
	assert.Contains(t, out, "Last updated: 09:30:00")
	assert.Contains(t, out, "Weekly trends")
	assert.Contains(t, out, "Week 2026-03-02 – 2026-03-08")
	assert.Contains(t, out, "rotate on-call")
}

func TestRenderEmptySections(t *testing.T) {
	assert.Contains(t, RenderChannels(nil), "No channels are monitored yet.")
	assert.Contains(t, renderSection(dashboard.SectionWarnings, dashboard.Snapshot{}), "No burnout warnings.")
	assert.Contains(t, RenderChannels([]models.Channel{{ChannelID: "C2", ChannelName: "random"}}), "inactive")
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 42.0, Percent(0.42), 1e-9)
	assert.InDelta(t, 42.0, Percent(42), 1e-9)
}
