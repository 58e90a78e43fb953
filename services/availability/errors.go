package availability

import "fmt"

// ValidationError is a malformed search request, rejected before any
// supplier call is made.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// NoUnitError means an occupancy matched no purchasable unit. The index is
// explicit so the caller can report which traveler could not be seated;
// the selector never leaves silent holes in its output.
type NoUnitError struct {
	OccupancyIndex int
	Age            int
}

func (e *NoUnitError) Error() string {
	return fmt.Sprintf("no unit admits occupancy %d (age %d)", e.OccupancyIndex, e.Age)
}
