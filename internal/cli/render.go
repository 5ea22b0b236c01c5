// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/engagement-pulse/internal/auth"
	"github.com/MKhiriev/engagement-pulse/internal/tui"
	"github.com/MKhiriev/engagement-pulse/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderError(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}

func renderChannel(ch models.Channel) string {
	return tui.RenderChannels([]models.Channel{ch})
}

func renderSentiment(s models.DailySentiment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s on %s\n", s.ChannelID, s.Date)
	fmt.Fprintf(&b, "Messages: %d\n", s.TotalMessages)
	fmt.Fprintf(&b, "Positive %.1f%%  Negative %.1f%%  Neutral %.1f%%",
		tui.Percent(s.Positive), tui.Percent(s.Negative), tui.Percent(s.Neutral))

	keys := make([]string, 0, len(s.Extra))
	for k := range s.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n%s: %v", k, s.Extra[k])
	}
	return boxStyle.Render(b.String())
}

func renderIdentity(id auth.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>\n", id.User.Name, id.User.Email)
	fmt.Fprintf(&b, "id: %s", id.User.ID)
	if id.HasClaims && !id.Claims.ExpiresAt.IsZero() {
		expiry := id.Claims.ExpiresAt.Format("2006-01-02 15:04:05 MST")
		if id.Expired {
			fmt.Fprintf(&b, "\n%s", warnStyle.Render("token expired at "+expiry))
		} else {
			fmt.Fprintf(&b, "\ntoken expires at %s", expiry)
		}
	}
	return b.String()
}
