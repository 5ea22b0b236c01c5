package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
)

var sectionOrder = []dashboard.Section{
	dashboard.SectionChannels,
	dashboard.SectionTrends,
	dashboard.SectionWarnings,
}

// SnapshotLoader loads one dashboard snapshot.
type SnapshotLoader interface {
	Load(ctx context.Context) (dashboard.Snapshot, error)
}

type sectionState struct {
	section dashboard.Section
	spinner spinner.Model
	loading bool
}

// dashboardModel shows one spinner per section while it loads and the last
// snapshot otherwise. Background refreshes and loader progress arrive on
// events; the refresh key reloads in place.
type dashboardModel struct {
	ctx    context.Context
	loader SnapshotLoader
	events <-chan tea.Msg

	sections []sectionState
	snapshot dashboard.Snapshot
	loaded   bool

	showError    bool
	errorOverlay errorOverlayModel
	quitByUser   bool
}

func newDashboardModel(ctx context.Context, loader SnapshotLoader, events <-chan tea.Msg) dashboardModel {
	sections := make([]sectionState, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		sp := spinner.New()
		sp.Spinner = spinner.MiniDot
		// loading until the first snapshot arrives
		sections = append(sections, sectionState{section: s, spinner: sp, loading: true})
	}

	return dashboardModel{
		ctx:      ctx,
		loader:   loader,
		events:   events,
		sections: sections,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForEvent()}
	for _, s := range m.sections {
		cmds = append(cmds, s.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError && (key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc)) {
			m.showError = false
			m.errorOverlay.message = ""
			return m, nil
		}
		if key.Matches(msg, keys.refresh) {
			if m.busy() {
				return m, nil
			}
			m.showError = false
			return m, tea.Batch(m.startLoading(sectionOrder...), m.cmdReload())
		}
		return m, nil

	case sectionMsg:
		var cmd tea.Cmd
		if msg.loading {
			cmd = m.startLoading(msg.section)
		} else {
			m.setLoading(msg.section, false)
		}
		return m, tea.Batch(cmd, m.waitForEvent())

	case refreshedMsg:
		m.applyLoad(msg.snap, msg.err)
		return m, m.waitForEvent()

	case reloadedMsg:
		m.applyLoad(msg.snap, msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for i := range m.sections {
			if !m.sections[i].loading || m.sections[i].spinner.ID() != msg.ID {
				continue
			}
			var cmd tea.Cmd
			m.sections[i].spinner, cmd = m.sections[i].spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(dashboardTitle))
	b.WriteString("\n")
	if m.loaded {
		b.WriteString(faintStyle.Render("Last updated: " + m.snapshot.UpdatedAt.Format("15:04:05")))
		b.WriteString("\n")
	}

	for _, s := range m.sections {
		b.WriteString(sectionStyle.Render(sectionTitles[s.section]))
		b.WriteString("\n")
		switch {
		case s.loading:
			b.WriteString(s.spinner.View() + " Loading " + strings.ToLower(sectionTitles[s.section]) + "...")
		case m.loaded:
			b.WriteString(renderSection(s.section, m.snapshot))
		default:
			b.WriteString(faintStyle.Render("-"))
		}
		b.WriteString("\n")
	}

	if m.showError {
		b.WriteString("\n")
		b.WriteString(m.errorOverlay.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r: refresh  q: quit"))
	return appStyle.Render(b.String())
}

func (m dashboardModel) busy() bool {
	for _, s := range m.sections {
		if s.loading {
			return true
		}
	}
	return false
}

// startLoading marks sections as loading and starts the spinners of those
// that were idle.
func (m *dashboardModel) startLoading(sections ...dashboard.Section) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.sections {
		for _, s := range sections {
			if m.sections[i].section != s || m.sections[i].loading {
				continue
			}
			m.sections[i].loading = true
			cmds = append(cmds, m.sections[i].spinner.Tick)
		}
	}
	return tea.Batch(cmds...)
}

func (m *dashboardModel) setLoading(section dashboard.Section, loading bool) {
	for i := range m.sections {
		if m.sections[i].section == section {
			m.sections[i].loading = loading
		}
	}
}

// applyLoad ends every spinner, since a failed load stops at its first
// failing section, and shows either the snapshot or the error overlay.
func (m *dashboardModel) applyLoad(snap dashboard.Snapshot, err error) {
	for i := range m.sections {
		m.sections[i].loading = false
	}
	if err != nil {
		m.showError = true
		m.errorOverlay.message = dashboard.Describe(err)
		return
	}
	m.snapshot = snap
	m.loaded = true
	m.showError = false
	m.errorOverlay.message = ""
}

func (m dashboardModel) waitForEvent() tea.Cmd {
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-events:
			return msg
		}
	}
}

func (m dashboardModel) cmdReload() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		snap, err := loader.Load(ctx)
		return reloadedMsg{snap: snap, err: err}
	}
}
