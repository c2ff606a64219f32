package dirlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority orders log messages by severity. Lower values are more verbose.
// A message is written only when its priority is at or above the logger's threshold.
type Priority int

// Priority constants. The numeric ordering is meaningful and must not change.
const (
	PriorityUnset Priority = 0 // not specified, resolves to PriorityDebug
	PriorityDebug Priority = 1 // most verbose
	PriorityInfo  Priority = 2
	PriorityWarn  Priority = 3
	PriorityError Priority = 4
	PriorityFatal Priority = 5 // least verbose
	PriorityOff   Priority = 6 // nothing at all
)

// DefaultPriority is the threshold used when none is given.
const DefaultPriority = PriorityDebug

// priorityLabels maps known priorities to the label written in the log line.
var priorityLabels = map[Priority]string{
	PriorityDebug: "DEBUG",
	PriorityInfo:  "INFO",
	PriorityWarn:  "WARN",
	PriorityError: "ERROR",
	PriorityFatal: "FATAL",
	PriorityOff:   "OFF",
}

// String returns the upper-case label of the priority.
// Values outside the enumeration render as the generic "LOG" label.
func (p Priority) String() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return "LOG"
}

// label returns the tag used in a formatted line. OFF is never a message
// priority, so it falls back to the generic tag like any unknown value.
func (p Priority) label() string {
	if p >= PriorityDebug && p <= PriorityFatal {
		return priorityLabels[p]
	}
	return "LOG"
}

// Valid reports whether p is one of the defined priorities (DEBUG through OFF).
func (p Priority) Valid() bool {
	return p >= PriorityDebug && p <= PriorityOff
}

// ParsePriority converts a priority name or number to a Priority.
// Accepts "debug", "info", "warn"/"warning", "error", "fatal" and "off", case-insensitively,
// optionally prefixed with "priority" or "level". Decimal numbers are taken as-is.
func ParsePriority(s string) (Priority, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "priority")
	name = strings.TrimPrefix(name, "level")

	switch name {
	case "debug":
		return PriorityDebug, nil
	case "info":
		return PriorityInfo, nil
	case "warn", "warning":
		return PriorityWarn, nil
	case "error":
		return PriorityError, nil
	case "fatal":
		return PriorityFatal, nil
	case "off":
		return PriorityOff, nil
	case "":
		return PriorityUnset, fmt.Errorf("empty priority")
	}

	n, err := strconv.Atoi(name)
	if err != nil {
		return PriorityUnset, fmt.Errorf("invalid priority: %s", s)
	}
	return Priority(n), nil
}

// ValidPriorities returns the names accepted by ParsePriority.
func ValidPriorities() []string {
	return []string{"debug", "info", "warn", "error", "fatal", "off"}
}
