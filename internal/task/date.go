package task

import (
	"strings"
	"time"
)

// dueDateLayouts are tried in order when parsing a due date.
var dueDateLayouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006/1/2",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDueDate parses a due date in any of the accepted layouts.
// Returns false if the value cannot be parsed.
func ParseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Due returns the parsed due date of the task.
func (t Task) Due() (time.Time, bool) {
	return ParseDueDate(t.DueDate)
}
