package utils

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var errUnsupportedDate = errors.New("unsupported date format")

// ParseCalendarDate reads an ISO-8601 date ("2024-01-02") or RFC 3339
// timestamp and returns midnight of that calendar day in loc. Timestamps are
// converted to loc before truncation.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return StartOfDay(t, loc), nil
		}
	}

	return time.Time{}, errUnsupportedDate
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
