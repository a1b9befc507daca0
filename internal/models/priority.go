package models

import "strings"

// Priority represents how pressing a chore is.
// Variants are ordered by display order only.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMid
	PriorityHigh
)

// Priorities lists every priority in display order
var Priorities = []Priority{PriorityLow, PriorityMid, PriorityHigh}

// String returns the lowercase label used when rendering a chore
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMid:
		return "mid"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts a label ("low", "mid", "high") back into a Priority.
// "medium" is accepted as an alias for mid.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "mid", "medium":
		return PriorityMid, nil
	case "high":
		return PriorityHigh, nil
	}
	return 0, ErrInvalidPriority
}
