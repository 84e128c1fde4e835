// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a YYYY-MM-DD string into a midnight timestamp.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
