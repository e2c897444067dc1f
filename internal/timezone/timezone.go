// Package timezone pins reservation dates to UTC calendar days.
package timezone

import "time"

const DateLayout = "2006-01-02"

func Now() time.Time {
	return time.Now().UTC()
}

// Today truncates now to its UTC calendar day.
func Today(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD as a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
