package workflow

import (
	"context"
	"errors"

	"talentx/internal/domain/application"
	"talentx/internal/domain/deadline"
	"talentx/internal/domain/user"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

// Applications owns the transition from "no application" to "applied" for a
// (job, talent) pair. The transition happens at most once per pair.
type Applications struct {
	jobs   repository.JobRepository
	apps   repository.ApplicationRepository
	policy deadline.Policy
}

func NewApplications(jobs repository.JobRepository, apps repository.ApplicationRepository, policy deadline.Policy) *Applications {
	return &Applications{jobs: jobs, apps: apps, policy: policy}
}

func (a *Applications) Apply(ctx context.Context, jobID, talentID uuid.UUID, source application.Source) (application.Application, error) {
	if !source.Valid() || talentID == uuid.Nil {
		return application.Application{}, ErrValidation
	}

	j, err := a.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, internal("load job", err)
	}

	if a.policy.IsExpired(j.Deadline) {
		return application.Application{}, ErrDeadlinePassed
	}

	created, err := a.apps.Insert(ctx, a.newApplication(jobID, talentID, source))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationExists):
			return application.Application{}, ErrAlreadyApplied
		case errors.Is(err, repository.ErrJobNotFound):
			return application.Application{}, ErrJobNotFound
		case errors.Is(err, user.ErrNotFound):
			return application.Application{}, ErrTalentNotFound
		}
		return application.Application{}, internal("insert application", err)
	}
	return created, nil
}

// ApplyOrSkip records an invitation-sourced application. An existing application
// for the pair is returned as is with created=false.
func (a *Applications) ApplyOrSkip(ctx context.Context, jobID, talentID uuid.UUID) (app application.Application, created bool, err error) {
	app, err = a.apps.Insert(ctx, a.newApplication(jobID, talentID, application.SourceInvitation))
	if err == nil {
		return app, true, nil
	}
	if !errors.Is(err, repository.ErrApplicationExists) {
		return application.Application{}, false, internal("insert invitation application", err)
	}

	existing, err := a.apps.FindByJobAndTalent(ctx, jobID, talentID)
	if err != nil {
		return application.Application{}, false, internal("load existing application", err)
	}
	return existing, false, nil
}

func (a *Applications) newApplication(jobID, talentID uuid.UUID, source application.Source) application.Application {
	return application.Application{
		ID:        uuid.New(),
		JobID:     jobID,
		TalentID:  talentID,
		Source:    source,
		CreatedAt: a.policy.Now().UTC(),
	}
}
