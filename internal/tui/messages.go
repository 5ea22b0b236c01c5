package tui

import "github.com/MKhiriev/engagement-pulse/internal/dashboard"

// sectionMsg is a loading-state transition reported by the loader.
type sectionMsg struct {
	section dashboard.Section
	loading bool
}

// refreshedMsg carries the outcome of a background refresh.
type refreshedMsg struct {
	snap dashboard.Snapshot
	err  error
}

// reloadedMsg carries the outcome of a reload requested with the refresh key.
type reloadedMsg struct {
	snap dashboard.Snapshot
	err  error
}
