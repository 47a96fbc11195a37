// Package output renders the pending report.
//
// The report is line oriented: one path per line, with an unresolved
// directory printed before the entries still pending inside it. On a
// terminal the lines are styled with lipgloss; anywhere else the output is
// plain text.
package output
