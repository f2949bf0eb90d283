package timeutil

import "time"

// FromEpoch converts seconds since the Unix epoch to a UTC time.
func FromEpoch(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
