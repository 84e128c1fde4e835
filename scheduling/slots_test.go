package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsDefaultGrid(t *testing.T) {
	slots := GenerateSlots(DefaultOpening, DefaultClosing, DefaultStepMinutes)

	require.Len(t, slots, 25)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "20:00", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, TimeOfDay(30), slots[i]-slots[i-1], "slots must ascend in 30 minute steps")
	}
}

func TestGenerateSlotsInvertedRange(t *testing.T) {
	slots := GenerateSlots(DefaultClosing, DefaultOpening, DefaultStepMinutes)
	assert.Empty(t, slots)
}

func TestGenerateSlotsNonPositiveStep(t *testing.T) {
	assert.Empty(t, GenerateSlots(DefaultOpening, DefaultClosing, 0))
	assert.Empty(t, GenerateSlots(DefaultOpening, DefaultClosing, -15))
}

func TestGenerateSlotsClosingOffBoundary(t *testing.T) {
	opening, err := ParseTimeOfDay("08:00")
	require.NoError(t, err)
	closing, err := ParseTimeOfDay("09:15")
	require.NoError(t, err)

	slots := GenerateSlots(opening, closing, 30)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[2].String(), "last slot stops at the boundary before closing")
}

func TestGenerateSlotsSingleSlot(t *testing.T) {
	opening, _ := ParseTimeOfDay("10:00")
	slots := GenerateSlots(opening, opening, 30)
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].String())
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	first := GenerateSlots(DefaultOpening, DefaultClosing, DefaultStepMinutes)
	second := GenerateSlots(DefaultOpening, DefaultClosing, DefaultStepMinutes)
	assert.Equal(t, first, second)
}

func TestSlotLabels(t *testing.T) {
	opening, _ := ParseTimeOfDay("08:00")
	closing, _ := ParseTimeOfDay("09:00")

	labels := SlotLabels(opening, closing, 30)
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, labels)
}
