package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingFieldOrder(t *testing.T) {
	// All fields invalid: the client name failure must win.
	err := ValidateBooking("", "", "", 45)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "clientName", vErr.Field)

	err = ValidateBooking("Ana", "", "", 45)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "phone", vErr.Field)

	err = ValidateBooking("Ana", "+5511999990000", "", 45)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "serviceId", vErr.Field)

	err = ValidateBooking("Ana", "+5511999990000", "svc-1", 45)
	assert.ErrorIs(t, err, ErrDurationNotAllowed)
}

func TestValidateBookingTrimsWhitespace(t *testing.T) {
	err := ValidateBooking("   ", "+5511999990000", "svc-1", 30)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "clientName", vErr.Field)
}

func TestValidateBookingAccepts(t *testing.T) {
	for _, d := range AllowedDurations {
		assert.NoError(t, ValidateBooking("Ana", "+5511999990000", "svc-1", d))
	}
}

func TestDurationAllowed(t *testing.T) {
	assert.True(t, DurationAllowed(30))
	assert.True(t, DurationAllowed(60))
	assert.True(t, DurationAllowed(90))
	assert.False(t, DurationAllowed(0))
	assert.False(t, DurationAllowed(45))
	assert.False(t, DurationAllowed(120))
}

func TestCheckEditable(t *testing.T) {
	assert.NoError(t, CheckEditable(false))
	// Once completed, a booking is locked against edits for good.
	assert.ErrorIs(t, CheckEditable(true), ErrImmutableRecord)
}

func TestServiceDisplayNameAppliedOnEveryEdit(t *testing.T) {
	// The snapshot is re-derived from the current service row whenever a
	// booking is written, so a rename reaches appointments on their next edit.
	assert.Equal(t, "Haircut", ServiceDisplayName("Haircut", "Cut", "svc-1"))
	assert.Equal(t, "Hair & Beard", ServiceDisplayName("Hair & Beard", "Cut", "svc-1"))
}

func TestServiceDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Haircut", ServiceDisplayName("Haircut", "Cut", "svc-1"))
	assert.Equal(t, "Cut", ServiceDisplayName("", "Cut", "svc-1"))
	assert.Equal(t, "Cut", ServiceDisplayName("   ", "Cut", "svc-1"))
	assert.Equal(t, "svc-1", ServiceDisplayName("", "", "svc-1"))
}
