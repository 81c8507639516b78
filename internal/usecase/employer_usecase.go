package usecase

import (
	"context"
	"errors"
	"time"

	"talentx/internal/domain/application"
	"talentx/internal/domain/deadline"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/matching"
	"talentx/internal/domain/user"
	"talentx/internal/infrastructure/textgen"
	"talentx/internal/pkg/logger"
	"talentx/internal/repository"
	"talentx/internal/usecase/workflow"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateJobInput struct {
	Title       string
	CompanyName string
	TechStack   []string
	Deadline    time.Time
}

type TalentMatch struct {
	TalentID uuid.UUID
	Name     string
	Score    int
}

type DescriptionGenerator interface {
	Describe(ctx context.Context, req textgen.Request) string
}

type EmployerUsecase interface {
	CreateJob(ctx context.Context, caller user.Identity, in CreateJobInput) (job.Job, error)
	ListApplicants(ctx context.Context, caller user.Identity, jobID uuid.UUID) ([]application.Applicant, error)
	ListMatches(ctx context.Context, caller user.Identity, jobID uuid.UUID) ([]TalentMatch, error)
	Invite(ctx context.Context, caller user.Identity, jobID, talentID uuid.UUID) (invitation.Invitation, error)
}

type Employer struct {
	jobs        repository.JobRepository
	users       user.Repository
	apps        repository.ApplicationRepository
	invitations *workflow.Invitations
	describer   DescriptionGenerator
	policy      deadline.Policy
	invalidate  cacheInvalidator
	logger      *zap.Logger
}

func NewEmployerUsecase(
	jobs repository.JobRepository,
	users user.Repository,
	apps repository.ApplicationRepository,
	invitations *workflow.Invitations,
	describer DescriptionGenerator,
	cache JobCache,
	policy deadline.Policy,
	l *zap.Logger,
) *Employer {
	l = logger.OrNop(l).Named("employer")
	if describer == nil {
		describer = textgen.NewGenerator(nil, 0, l)
	}
	return &Employer{
		jobs:        jobs,
		users:       users,
		apps:        apps,
		invitations: invitations,
		describer:   describer,
		policy:      policy,
		invalidate:  cacheInvalidator{cache: cache, logger: l},
		logger:      l,
	}
}

func (u *Employer) CreateJob(ctx context.Context, caller user.Identity, in CreateJobInput) (job.Job, error) {
	if !caller.IsEmployer() {
		return job.Job{}, ErrUnauthorized
	}
	if !u.policy.IsOpen(in.Deadline) {
		return job.Job{}, ErrDeadlineNotInFuture
	}

	description := u.describer.Describe(ctx, textgen.Request{
		Title:       in.Title,
		CompanyName: in.CompanyName,
		TechStack:   in.TechStack,
	})

	created, err := u.jobs.Create(ctx, job.Job{
		ID:          uuid.New(),
		Title:       in.Title,
		CompanyName: in.CompanyName,
		TechStack:   append([]string(nil), in.TechStack...),
		Deadline:    in.Deadline.UTC(),
		Description: description,
		EmployerID:  caller.ID,
		CreatedAt:   u.policy.Now().UTC(),
	})
	if err != nil {
		return job.Job{}, logInternal(u.logger, "create job", internalErr("create job", err))
	}

	u.invalidate.jobCreated(ctx)
	u.logger.Info("job created", zap.String("job_id", created.ID.String()), zap.String("employer_id", caller.ID.String()))
	return created, nil
}

func (u *Employer) ListApplicants(ctx context.Context, caller user.Identity, jobID uuid.UUID) ([]application.Applicant, error) {
	if err := u.ownJob(ctx, caller, jobID); err != nil {
		return nil, err
	}
	out, err := u.apps.ListApplicantsByJob(ctx, jobID)
	if err != nil {
		return nil, logInternal(u.logger, "list applicants", internalErr("list applicants", err))
	}
	return out, nil
}

// ListMatches ranks every talent who has not applied to the job by match score.
func (u *Employer) ListMatches(ctx context.Context, caller user.Identity, jobID uuid.UUID) ([]TalentMatch, error) {
	if err := u.ownJob(ctx, caller, jobID); err != nil {
		return nil, err
	}
	talents, err := u.users.ListTalentsExcludingJobApplicants(ctx, jobID)
	if err != nil {
		return nil, logInternal(u.logger, "list matches", internalErr("list talents", err))
	}

	ranked := matching.Rank(talents, func(t user.User) int { return matching.TalentMatchScore(t.ID) })
	out := make([]TalentMatch, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, TalentMatch{TalentID: r.Item.ID, Name: r.Item.Name, Score: r.Score})
	}
	return out, nil
}

func (u *Employer) Invite(ctx context.Context, caller user.Identity, jobID, talentID uuid.UUID) (invitation.Invitation, error) {
	if !caller.IsEmployer() {
		return invitation.Invitation{}, ErrUnauthorized
	}
	inv, err := u.invitations.Create(ctx, jobID, talentID, caller.ID)
	if err != nil {
		return invitation.Invitation{}, logInternal(u.logger, "invite", err)
	}
	u.logger.Info("invitation created",
		zap.String("invitation_id", inv.ID.String()),
		zap.String("job_id", jobID.String()),
		zap.String("talent_id", talentID.String()),
	)
	return inv, nil
}

// ownJob reports a job owned by someone else as not found.
func (u *Employer) ownJob(ctx context.Context, caller user.Identity, jobID uuid.UUID) error {
	if !caller.IsEmployer() {
		return ErrUnauthorized
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return logInternal(u.logger, "load job", internalErr("load job", err))
	}
	if !j.OwnedBy(caller.ID) {
		return ErrJobNotFound
	}
	return nil
}
