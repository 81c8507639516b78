package usecase

import (
	"context"
	"errors"

	"talentx/internal/domain/deadline"
	"talentx/internal/domain/job"
	"talentx/internal/pkg/logger"
	"talentx/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobDetails struct {
	job.Summary
	IsExpired bool
}

// JobUsecase serves the public, unauthenticated job reads.
type JobUsecase interface {
	ListJobs(ctx context.Context, search string) ([]job.Summary, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (JobDetails, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  JobCache
	policy deadline.Policy
	logger *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache JobCache, policy deadline.Policy, l *zap.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, policy: policy, logger: logger.OrNop(l).Named("jobs")}
}

func (u *Jobs) ListJobs(ctx context.Context, search string) ([]job.Summary, error) {
	key := JobsListCacheKey(search)
	var cached []job.Summary
	if u.lookup(ctx, key, &cached) {
		return cached, nil
	}

	out, err := u.jobs.Search(ctx, search)
	if err != nil {
		return nil, logInternal(u.logger, "list jobs", internalErr("search jobs", err))
	}
	u.store(ctx, key, out)
	return out, nil
}

// GetJob returns the job with its live expiry flag. Only the summary is cached.
func (u *Jobs) GetJob(ctx context.Context, jobID uuid.UUID) (JobDetails, error) {
	key := JobDetailCacheKey(jobID)
	var s job.Summary
	if !u.lookup(ctx, key, &s) {
		var err error
		s, err = u.jobs.GetSummary(ctx, jobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return JobDetails{}, ErrJobNotFound
			}
			return JobDetails{}, logInternal(u.logger, "get job", internalErr("load job", err))
		}
		u.store(ctx, key, s)
	}
	return JobDetails{Summary: s, IsExpired: u.policy.IsExpired(s.Deadline)}, nil
}

func (u *Jobs) lookup(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if hit {
		u.logger.Debug("cache hit", zap.String("key", key))
	}
	return hit
}

func (u *Jobs) store(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, 0); err != nil {
		u.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
