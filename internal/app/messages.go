// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the pulse CLI.
//
// Keeping them in one place ensures consistent wording between the dashboard
// error banner, the session hint and the command output.
package app

const (
	// MsgDashboardLoadFailed prefixes every dashboard failure message.
	MsgDashboardLoadFailed = "Failed to load dashboard data. "

	// MsgServerSlow is shown when a dashboard request ran out of time.
	MsgServerSlow = "The server is taking too long to respond. This might be due to Slack API delays. Please try again."

	// MsgServerError is shown when the backend answered 500.
	MsgServerError = "Server error occurred. Please try again later."

	// MsgCheckSlackConnection is shown for every other failure.
	MsgCheckSlackConnection = "Please check your Slack connection and try again."

	// MsgSessionExpired is printed when the backend rejected the stored
	// session and it has been cleared.
	MsgSessionExpired = "Your session has expired or is invalid. Please sign in again"

	// MsgNotSignedIn is printed by commands that need a session when none is
	// stored.
	MsgNotSignedIn = "You are not signed in"

	// MsgLoginHint tells the user how to sign in.
	MsgLoginHint = "run `pulse login --credential <google-id-token>`"
)
