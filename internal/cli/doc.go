// Package cli implements the pulse command line: a cobra command tree over
// the engagement, auth and dashboard packages, with lipgloss-rendered
// output.
package cli
