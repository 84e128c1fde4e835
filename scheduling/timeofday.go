// Package scheduling holds the agenda's slot grid and conflict rules as pure
// functions so they can be exercised without a database. Controllers fetch
// the day's records, call into this package for the decision, then persist.
package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

var ErrBadTimeOfDay = errors.New("time of day must be HH:MM between 00:00 and 23:59")

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, ErrBadTimeOfDay
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrBadTimeOfDay
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadTimeOfDay
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrBadTimeOfDay
	}
	return TimeOfDay(h*60 + m), nil
}

// String formats the time as "HH:MM". Values past midnight wrap for display
// but never occur in a valid grid.
func (t TimeOfDay) String() string {
	m := int(t)
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}

// Add returns the time advanced by the given number of minutes.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}
