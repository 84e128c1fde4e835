package scheduling

import "errors"

var (
	ErrSlotConflict = errors.New("time slot conflicts with an existing appointment")
	ErrTimeBlocked  = errors.New("time slot falls inside a blocked period")
)

// Interval is a half-open booking window [Start, Start+Duration).
type Interval struct {
	Start           TimeOfDay
	DurationMinutes int
}

// End returns the exclusive end of the interval.
func (i Interval) End() TimeOfDay {
	return i.Start.Add(i.DurationMinutes)
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals (one ending exactly where the other starts) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End() && b.Start < a.End()
}

// CanPlace accepts a candidate interval unless it overlaps any existing
// interval on the same day. The caller is responsible for passing only that
// day's appointments and, when editing, for excluding the record itself.
func CanPlace(candidate Interval, existing []Interval) error {
	for _, iv := range existing {
		if Overlaps(candidate, iv) {
			return ErrSlotConflict
		}
	}
	return nil
}

// CanPlaceWithBlocks runs CanPlace and additionally rejects candidates that
// overlap a blocked period.
func CanPlaceWithBlocks(candidate Interval, existing, blocks []Interval) error {
	if err := CanPlace(candidate, existing); err != nil {
		return err
	}
	for _, b := range blocks {
		if Overlaps(candidate, b) {
			return ErrTimeBlocked
		}
	}
	return nil
}
