package usecase

import "errors"

// ErrFlightNotFound is returned when the flight record cannot be fetched
// from the flight service even after every fallback. This is the only
// failure that aborts roster generation.
var ErrFlightNotFound = errors.New("flight not found")

// ValidationError reports a defect in a caller-supplied roster payload
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
