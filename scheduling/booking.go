package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

// AllowedDurations are the appointment lengths the agenda offers, in minutes.
var AllowedDurations = []int{30, 60, 90}

var (
	ErrDurationNotAllowed = errors.New("duration must be 30, 60 or 90 minutes")
	ErrImmutableRecord    = errors.New("completed appointments cannot be edited")
)

// ValidationError reports a missing or malformed booking field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CheckEditable guards the edit path: a completed appointment is locked and
// can only be deleted, never modified.
func CheckEditable(completed bool) error {
	if completed {
		return ErrImmutableRecord
	}
	return nil
}

// DurationAllowed reports whether d is one of the offered appointment lengths.
func DurationAllowed(d int) bool {
	for _, v := range AllowedDurations {
		if v == d {
			return true
		}
	}
	return false
}

// ValidateBooking checks the booking fields in a fixed order, returning the
// first failure: client name, phone, service reference, duration.
func ValidateBooking(clientName, phone, serviceID string, durationMinutes int) error {
	if strings.TrimSpace(clientName) == "" {
		return &ValidationError{Field: "clientName", Reason: "required"}
	}
	if strings.TrimSpace(phone) == "" {
		return &ValidationError{Field: "phone", Reason: "required"}
	}
	if strings.TrimSpace(serviceID) == "" {
		return &ValidationError{Field: "serviceId", Reason: "required"}
	}
	if !DurationAllowed(durationMinutes) {
		return ErrDurationNotAllowed
	}
	return nil
}

// ServiceDisplayName resolves the label snapshotted onto an appointment:
// the service name, else its alternate label, else the raw id. Records
// imported from the old system sometimes carry only the alternate field.
func ServiceDisplayName(name, label, rawID string) string {
	if s := strings.TrimSpace(name); s != "" {
		return s
	}
	if s := strings.TrimSpace(label); s != "" {
		return s
	}
	return rawID
}
