package models

import (
	"time"
)

// WireTimeLayout is the timestamp layout used by the taxe API for every date field
// (yy-MM-dd'T'HH:mm:ss.SSS'Z').
const WireTimeLayout = "06-01-02T15:04:05.000Z"

// fullYearLayout is the same layout with a four digit year, as emitted by
// servers that serialize dates with toISOString
const fullYearLayout = "2006-01-02T15:04:05.000Z"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time in the API wire layout
func FormatTime(t time.Time) string {
	return t.UTC().Format(WireTimeLayout)
}

// ParseTime parses a string in the API wire layout, falling back to the same
// layout with a four digit year. The trailing Z is a literal, so the result is
// always UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(WireTimeLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}
	if full, ferr := time.ParseInLocation(fullYearLayout, s, time.UTC); ferr == nil {
		return full, nil
	}
	return time.Time{}, err
}
