// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable is shown for build metadata that was not injected.
const NotAvailable = "N/A"

// BuildInfo carries build-time metadata injected by linker flags and shown by
// `pulse version`.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo trims the given values and replaces empty ones with
// NotAvailable.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: valueOrNA(version),
		Date:    valueOrNA(date),
		Commit:  valueOrNA(commit),
	}
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
