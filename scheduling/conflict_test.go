package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, clock string, duration int) Interval {
	t.Helper()
	start, err := ParseTimeOfDay(clock)
	require.NoError(t, err)
	return Interval{Start: start, DurationMinutes: duration}
}

func TestOverlapsSymmetry(t *testing.T) {
	pairs := []struct {
		a, b Interval
	}{
		{at(t, "09:00", 60), at(t, "09:30", 30)},
		{at(t, "09:00", 60), at(t, "10:00", 30)},
		{at(t, "08:00", 90), at(t, "08:00", 30)},
		{at(t, "14:00", 30), at(t, "18:00", 60)},
	}

	for _, p := range pairs {
		assert.Equal(t, Overlaps(p.a, p.b), Overlaps(p.b, p.a),
			"overlap must be symmetric for %v and %v", p.a, p.b)
	}
}

func TestOverlapsBackToBack(t *testing.T) {
	// An appointment ending at 10:00 never conflicts with one starting there.
	first := at(t, "09:00", 60)
	assert.False(t, Overlaps(first, at(t, "10:00", 30)))
	assert.False(t, Overlaps(first, at(t, "10:00", 90)))
	assert.False(t, Overlaps(at(t, "10:00", 30), first))
}

func TestOverlapsIdenticalStart(t *testing.T) {
	assert.True(t, Overlaps(at(t, "09:00", 30), at(t, "09:00", 90)))
	assert.True(t, Overlaps(at(t, "09:00", 30), at(t, "09:00", 30)))
}

func TestOverlapsContainment(t *testing.T) {
	assert.True(t, Overlaps(at(t, "09:00", 90), at(t, "09:30", 30)))
}

func TestCanPlaceRejectsOverlap(t *testing.T) {
	// 09:00 for an hour is booked; 09:30 for half an hour lands inside it.
	existing := []Interval{at(t, "09:00", 60)}

	err := CanPlace(at(t, "09:30", 30), existing)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCanPlaceAcceptsBackToBack(t *testing.T) {
	existing := []Interval{at(t, "09:00", 60)}

	assert.NoError(t, CanPlace(at(t, "10:00", 30), existing))
	assert.NoError(t, CanPlace(at(t, "08:00", 60), existing))
}

func TestCanPlaceEmptyDay(t *testing.T) {
	assert.NoError(t, CanPlace(at(t, "09:00", 90), nil))
}

func TestCanPlaceMultipleExisting(t *testing.T) {
	existing := []Interval{
		at(t, "08:00", 30),
		at(t, "09:00", 60),
		at(t, "11:00", 90),
	}

	assert.NoError(t, CanPlace(at(t, "10:00", 60), existing))
	assert.ErrorIs(t, CanPlace(at(t, "10:30", 60), existing), ErrSlotConflict)
	assert.ErrorIs(t, CanPlace(at(t, "08:00", 90), existing), ErrSlotConflict)
}

func TestCanPlaceWithBlocks(t *testing.T) {
	existing := []Interval{at(t, "09:00", 60)}
	blocks := []Interval{at(t, "12:00", 60)} // lunch

	assert.NoError(t, CanPlaceWithBlocks(at(t, "13:00", 30), existing, blocks))
	assert.ErrorIs(t, CanPlaceWithBlocks(at(t, "12:30", 30), existing, blocks), ErrTimeBlocked)
	// Appointment conflicts take precedence over block conflicts.
	assert.ErrorIs(t, CanPlaceWithBlocks(at(t, "09:30", 30), existing, blocks), ErrSlotConflict)
}

func TestIntervalEnd(t *testing.T) {
	assert.Equal(t, "10:00", at(t, "09:00", 60).End().String())
	assert.Equal(t, "10:30", at(t, "09:00", 90).End().String())
}
