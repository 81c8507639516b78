package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalidState   = errors.New("invitation has already been responded to")
	ErrDeadlinePassed = errors.New("deadline has passed")
	ErrValidation     = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")

	ErrJobNotFound        = fmt.Errorf("job %w", ErrNotFound)
	ErrTalentNotFound     = fmt.Errorf("talent %w", ErrNotFound)
	ErrInvitationNotFound = fmt.Errorf("invitation %w", ErrNotFound)

	ErrAlreadyApplied = fmt.Errorf("%w: talent has already applied to this job", ErrConflict)
	ErrAlreadyInvited = fmt.Errorf("%w: invitation already sent to this talent", ErrConflict)
)

// internal wraps an unexpected collaborator failure so callers can match
// ErrInternal while logs keep the cause.
func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}
