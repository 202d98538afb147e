package core

import (
	"strings"
	"time"
)

// dateLayouts lists the formats accepted by ParseDate, most common first.
// ISO yyyy-mm-dd is the canonical dataset form.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses a transaction date string. ok is false for anything
// unparsable; callers treat such dates as never matching a date filter
// and skip them when bucketing by month.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
