package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidActivityDate is returned when an activity's date cannot be
	// parsed as a calendar date. Dates are accepted unvalidated at creation
	// time, so the failure surfaces here, during matching.
	ErrInvalidActivityDate = errors.New("invalid activity date")
)
