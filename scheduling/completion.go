package scheduling

import "errors"

var (
	ErrAlreadyCompleted = errors.New("appointment is already completed")
	ErrServiceNotFound  = errors.New("appointment references an unknown service")
	ErrInvalidPrice     = errors.New("service price must be greater than zero")
)

// CheckCompletion guards the completion workflow. The checks run in a fixed
// order and all of them must pass before any write happens: a completed
// appointment stays completed, the service must still exist, and its price
// must be positive or no ledger entry can be derived from it.
func CheckCompletion(alreadyCompleted, serviceFound bool, price float64) error {
	if alreadyCompleted {
		return ErrAlreadyCompleted
	}
	if !serviceFound {
		return ErrServiceNotFound
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
