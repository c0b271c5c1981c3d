package fleet

import (
	"errors"
	"fmt"
)

// Coordinator operations fail with exactly one of these sentinel errors.
// Callers classify with errors.Is; the wrapped message carries the detail.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition marks an operation against a record that is not
	// in an eligible state for it.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrReferential marks a reference to a vehicle, driver or trip that
	// does not exist in the store.
	ErrReferential = errors.New("not found")

	// ErrConflict marks a vehicle or driver already claimed by another
	// active trip or an open shop visit.
	ErrConflict = errors.New("conflict")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func transitionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}

func referentialf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReferential, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
