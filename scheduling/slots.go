package scheduling

// Default agenda grid: 08:00 to 20:00 in 30 minute steps, 25 slots.
const (
	DefaultOpening      = TimeOfDay(8 * 60)
	DefaultClosing      = TimeOfDay(20 * 60)
	DefaultStepMinutes  = 30
	DefaultOpeningLabel = "08:00"
	DefaultClosingLabel = "20:00"
)

// GenerateSlots returns every bookable start time from opening to closing,
// stepMinutes apart, ascending. Closing itself is included when it falls
// exactly on a step boundary. An inverted range or non-positive step yields
// an empty grid, which the agenda renders as "no slots available".
func GenerateSlots(opening, closing TimeOfDay, stepMinutes int) []TimeOfDay {
	slots := []TimeOfDay{}
	if stepMinutes <= 0 || opening > closing {
		return slots
	}
	for t := opening; t <= closing; t = t.Add(stepMinutes) {
		slots = append(slots, t)
	}
	return slots
}

// SlotLabels is GenerateSlots with the result formatted as "HH:MM" strings,
// the shape the agenda endpoint returns.
func SlotLabels(opening, closing TimeOfDay, stepMinutes int) []string {
	slots := GenerateSlots(opening, closing, stepMinutes)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.String()
	}
	return labels
}
