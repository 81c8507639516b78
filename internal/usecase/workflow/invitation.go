package workflow

import (
	"context"
	"errors"

	"talentx/internal/domain/deadline"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/user"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

// Invitations moves invitations from PENDING to ACCEPTED or DECLINED. Both
// targets are terminal.
type Invitations struct {
	jobs         repository.JobRepository
	users        user.Repository
	apps         repository.ApplicationRepository
	invites      repository.InvitationRepository
	applications *Applications
	policy       deadline.Policy
}

func NewInvitations(
	jobs repository.JobRepository,
	users user.Repository,
	apps repository.ApplicationRepository,
	invites repository.InvitationRepository,
	applications *Applications,
	policy deadline.Policy,
) *Invitations {
	return &Invitations{
		jobs:         jobs,
		users:        users,
		apps:         apps,
		invites:      invites,
		applications: applications,
		policy:       policy,
	}
}

func (s *Invitations) Create(ctx context.Context, jobID, talentID, employerID uuid.UUID) (invitation.Invitation, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return invitation.Invitation{}, ErrJobNotFound
		}
		return invitation.Invitation{}, internal("load job", err)
	}
	if !j.OwnedBy(employerID) {
		return invitation.Invitation{}, ErrJobNotFound
	}

	talent, err := s.users.GetByID(ctx, talentID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return invitation.Invitation{}, ErrTalentNotFound
		}
		return invitation.Invitation{}, internal("load talent", err)
	}
	if talent.Role != user.RoleTalent {
		return invitation.Invitation{}, ErrTalentNotFound
	}

	_, err = s.apps.FindByJobAndTalent(ctx, jobID, talentID)
	if err == nil {
		return invitation.Invitation{}, ErrAlreadyApplied
	}
	if !errors.Is(err, repository.ErrApplicationNotFound) {
		return invitation.Invitation{}, internal("check application", err)
	}

	// The duplicate guard ignores status: a declined invitation still blocks a new one.
	created, err := s.invites.CreateUnique(ctx, invitation.Invitation{
		ID:         uuid.New(),
		JobID:      jobID,
		TalentID:   talentID,
		EmployerID: employerID,
		Status:     invitation.StatusPending,
		CreatedAt:  s.policy.Now().UTC(),
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvitationExists):
			return invitation.Invitation{}, ErrAlreadyInvited
		case errors.Is(err, repository.ErrJobNotFound):
			return invitation.Invitation{}, ErrJobNotFound
		case errors.Is(err, user.ErrNotFound):
			return invitation.Invitation{}, ErrTalentNotFound
		}
		return invitation.Invitation{}, internal("create invitation", err)
	}
	return created, nil
}

// Respond applies the talent's answer. Accepting also records an application with
// source INVITATION unless the talent already applied. If that last step fails the
// invitation stays answered and the error matches ErrInternal.
func (s *Invitations) Respond(ctx context.Context, invitationID, talentID uuid.UUID, status invitation.Status) (invitation.Invitation, error) {
	if !status.IsResponse() {
		return invitation.Invitation{}, ErrValidation
	}

	current, err := s.invites.GetForTalent(ctx, invitationID, talentID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return invitation.Invitation{}, ErrInvitationNotFound
		}
		return invitation.Invitation{}, internal("load invitation", err)
	}
	if current.Status != invitation.StatusPending {
		return invitation.Invitation{}, ErrInvalidState
	}
	if s.policy.IsExpired(current.JobDeadline) {
		return invitation.Invitation{}, ErrDeadlinePassed
	}

	updated, err := s.invites.TransitionFromPending(ctx, invitationID, status)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotPending) {
			return invitation.Invitation{}, ErrInvalidState
		}
		return invitation.Invitation{}, internal("update invitation", err)
	}

	if status == invitation.StatusAccepted {
		if _, _, err := s.applications.ApplyOrSkip(ctx, updated.JobID, talentID); err != nil {
			return updated, err
		}
	}
	return updated, nil
}
