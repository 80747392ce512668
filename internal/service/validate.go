package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/planner-app/planner/internal/domain"
)

// validate is safe for concurrent use and caches struct metadata, so one
// instance is shared by every service.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q is not a valid email address", domain.ErrInvalidEmail, email)
	}
	return nil
}

func validateLinkURL(url string) error {
	if err := validate.Var(url, "required,http_url"); err != nil {
		return fmt.Errorf("%w: url must be an absolute http or https URL", domain.ErrValidation)
	}
	return nil
}

func validateTitle(field, title string, minLen int) error {
	n := len([]rune(strings.TrimSpace(title)))
	if n == 0 {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	if n < minLen {
		return fmt.Errorf("%w: %s must be at least %d characters", domain.ErrValidation, field, minLen)
	}
	return nil
}

// normalizeEmail trims surrounding space and lowercases the address so
// duplicates are detected regardless of case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// tripNotFound narrows a repo not-found on a trip lookup to ErrTripNotFound
// and wraps anything else with op.
func tripNotFound(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrTripNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func participantNotFound(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrParticipantNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
