package usecase

import (
	"errors"
	"fmt"

	"talentx/internal/usecase/workflow"

	"go.uber.org/zap"
)

var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotFound       = workflow.ErrNotFound
	ErrConflict       = workflow.ErrConflict
	ErrInvalidState   = workflow.ErrInvalidState
	ErrDeadlinePassed = workflow.ErrDeadlinePassed
	ErrValidation     = workflow.ErrValidation
	ErrInternal       = workflow.ErrInternal

	ErrJobNotFound        = workflow.ErrJobNotFound
	ErrTalentNotFound     = workflow.ErrTalentNotFound
	ErrInvitationNotFound = workflow.ErrInvitationNotFound
	ErrAlreadyApplied     = workflow.ErrAlreadyApplied
	ErrAlreadyInvited     = workflow.ErrAlreadyInvited

	ErrDeadlineNotInFuture = fmt.Errorf("deadline must be in the future: %w", ErrValidation)
)

func internalErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}

// logInternal logs err when it is a system failure and returns it unchanged.
func logInternal(l *zap.Logger, op string, err error) error {
	if err != nil && errors.Is(err, ErrInternal) {
		l.Error(op+" failed", zap.Error(err))
	}
	return err
}
