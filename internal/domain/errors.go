package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. destination too short, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// Specific error kinds. Each wraps one of the sentinels above, so callers can
// branch on the broad category with errors.Is(err, ErrValidation) or on the
// exact kind with errors.Is(err, ErrInvalidDateRange).
var (
	ErrInvalidDestination  = fmt.Errorf("%w: invalid destination", ErrValidation)
	ErrInvalidDateRange    = fmt.Errorf("%w: invalid date range", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidActivityDate = fmt.Errorf("%w: invalid activity date", ErrValidation)

	ErrTripNotFound        = fmt.Errorf("trip %w", ErrNotFound)
	ErrParticipantNotFound = fmt.Errorf("participant %w", ErrNotFound)
)
