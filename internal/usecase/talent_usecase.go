package usecase

import (
	"context"
	"errors"

	"talentx/internal/domain/application"
	"talentx/internal/domain/deadline"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/matching"
	"talentx/internal/domain/user"
	"talentx/internal/pkg/logger"
	"talentx/internal/repository"
	"talentx/internal/usecase/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedItem struct {
	JobID       uuid.UUID
	Title       string
	CompanyName string
	Score       int
}

type TalentUsecase interface {
	Apply(ctx context.Context, caller user.Identity, jobID uuid.UUID, source application.Source) (application.Application, error)
	JobFeed(ctx context.Context, caller user.Identity) ([]FeedItem, error)
	ListInvitations(ctx context.Context, caller user.Identity) ([]invitation.WithJob, error)
	RespondToInvitation(ctx context.Context, caller user.Identity, invitationID uuid.UUID, status invitation.Status) (invitation.Invitation, error)
}

type Talent struct {
	jobs         repository.JobRepository
	invites      repository.InvitationRepository
	applications *workflow.Applications
	invitations  *workflow.Invitations
	policy       deadline.Policy
	invalidate   cacheInvalidator
	logger       *zap.Logger
}

func NewTalentUsecase(
	jobs repository.JobRepository,
	invites repository.InvitationRepository,
	applications *workflow.Applications,
	invitations *workflow.Invitations,
	cache JobCache,
	policy deadline.Policy,
	l *zap.Logger,
) *Talent {
	l = logger.OrNop(l).Named("talent")
	return &Talent{
		jobs:         jobs,
		invites:      invites,
		applications: applications,
		invitations:  invitations,
		policy:       policy,
		invalidate:   cacheInvalidator{cache: cache, logger: l},
		logger:       l,
	}
}

func (u *Talent) Apply(ctx context.Context, caller user.Identity, jobID uuid.UUID, source application.Source) (application.Application, error) {
	if !caller.IsTalent() {
		return application.Application{}, ErrUnauthorized
	}
	app, err := u.applications.Apply(ctx, jobID, caller.ID, source)
	if err != nil {
		return application.Application{}, logInternal(u.logger, "apply", err)
	}
	u.invalidate.applicationCreated(ctx, JobDetailCacheKey(jobID))
	return app, nil
}

// JobFeed lists open jobs the caller has not applied to, best score first.
func (u *Talent) JobFeed(ctx context.Context, caller user.Identity) ([]FeedItem, error) {
	if !caller.IsTalent() {
		return nil, ErrUnauthorized
	}
	jobs, err := u.jobs.ListOpenNotAppliedBy(ctx, caller.ID, u.policy.Now())
	if err != nil {
		return nil, logInternal(u.logger, "job feed", internalErr("list open jobs", err))
	}

	ranked := matching.Rank(jobs, func(j job.Job) int { return matching.JobFeedScore(j.ID) })
	out := make([]FeedItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, FeedItem{
			JobID:       r.Item.ID,
			Title:       r.Item.Title,
			CompanyName: r.Item.CompanyName,
			Score:       r.Score,
		})
	}
	return out, nil
}

func (u *Talent) ListInvitations(ctx context.Context, caller user.Identity) ([]invitation.WithJob, error) {
	if !caller.IsTalent() {
		return nil, ErrUnauthorized
	}
	out, err := u.invites.ListByTalent(ctx, caller.ID)
	if err != nil {
		return nil, logInternal(u.logger, "list invitations", internalErr("list invitations", err))
	}
	return out, nil
}

// RespondToInvitation answers an invitation addressed to the caller. On a system
// failure after the answer was stored, the stored invitation is returned along
// with the error.
func (u *Talent) RespondToInvitation(ctx context.Context, caller user.Identity, invitationID uuid.UUID, status invitation.Status) (invitation.Invitation, error) {
	if !caller.IsTalent() {
		return invitation.Invitation{}, ErrUnauthorized
	}
	inv, err := u.invitations.Respond(ctx, invitationID, caller.ID, status)
	if err != nil {
		if errors.Is(err, ErrInternal) && inv.ID != uuid.Nil {
			u.logger.Error("invitation answered but application not recorded",
				zap.String("invitation_id", inv.ID.String()),
				zap.String("job_id", inv.JobID.String()),
				zap.Error(err),
			)
			return inv, err
		}
		return invitation.Invitation{}, logInternal(u.logger, "respond to invitation", err)
	}
	if inv.Status == invitation.StatusAccepted {
		u.invalidate.applicationCreated(ctx, JobDetailCacheKey(inv.JobID))
	}
	return inv, nil
}
