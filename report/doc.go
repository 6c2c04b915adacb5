// Package report renders allocations for people: a fixed-width text block,
// a lipgloss table for terminals, and a Summary value for YAML/JSON encoders.
package report
