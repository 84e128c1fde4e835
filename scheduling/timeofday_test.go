package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"08:00", 480, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 09:30 ", 570, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:00", 0, false},
		{"0900", 0, false},
		{"nine", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, TimeOfDay(tc.minutes), got, "input %q", tc.input)
		} else {
			assert.ErrorIs(t, err, ErrBadTimeOfDay, "input %q", tc.input)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:00", TimeOfDay(480).String())
	assert.Equal(t, "09:30", TimeOfDay(570).String())
	assert.Equal(t, "00:05", TimeOfDay(5).String())
}

func TestTimeOfDayAdd(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	assert.Equal(t, "10:30", start.Add(90).String())
}
