package workflow_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"talentx/internal/domain/application"
	"talentx/internal/domain/deadline"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/user"
	"talentx/internal/repository"
	"talentx/internal/repository/memory"
	"talentx/internal/usecase/workflow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store       *memory.Store
	policy      deadline.Policy
	apps        *workflow.Applications
	invitations *workflow.Invitations

	employer user.User
	talent   user.User
	openJob  job.Job
	pastJob  job.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{store: memory.NewStore(), policy: deadline.NewPolicy(func() time.Time { return now })}
	f.wire(f.store.Applications(), f.store.Invitations())

	var err error
	f.employer, err = f.store.Users().Create(ctx, user.User{ID: uuid.New(), Name: "John Smith", Role: user.RoleEmployer})
	require.NoError(t, err)
	f.talent, err = f.store.Users().Create(ctx, user.User{ID: uuid.New(), Name: "Alice Johnson", Role: user.RoleTalent})
	require.NoError(t, err)
	f.openJob = f.createJob(t, now.Add(30*24*time.Hour))
	f.pastJob = f.createJob(t, now.Add(-time.Hour))
	return f
}

func (f *fixture) wire(apps repository.ApplicationRepository, invites repository.InvitationRepository) {
	f.apps = workflow.NewApplications(f.store.Jobs(), apps, f.policy)
	f.invitations = workflow.NewInvitations(f.store.Jobs(), f.store.Users(), apps, invites, f.apps, f.policy)
}

func (f *fixture) createJob(t *testing.T, deadlineAt time.Time) job.Job {
	t.Helper()
	j, err := f.store.Jobs().Create(context.Background(), job.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		CompanyName: "TechCorp Inc",
		TechStack:   []string{"Go", "PostgreSQL"},
		Deadline:    deadlineAt,
		EmployerID:  f.employer.ID,
		CreatedAt:   now,
	})
	require.NoError(t, err)
	return j
}

func TestApply_ManualSuccess(t *testing.T) {
	f := newFixture(t)

	got, err := f.apps.Apply(context.Background(), f.openJob.ID, f.talent.ID, application.SourceManual)

	require.NoError(t, err)
	assert.Equal(t, f.openJob.ID, got.JobID)
	assert.Equal(t, f.talent.ID, got.TalentID)
	assert.Equal(t, application.SourceManual, got.Source)
	assert.Equal(t, now, got.CreatedAt)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestApply_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.apps.Apply(ctx, uuid.New(), f.talent.ID, application.SourceManual)
	assert.ErrorIs(t, err, workflow.ErrJobNotFound)
	assert.ErrorIs(t, err, workflow.ErrNotFound)

	_, err = f.apps.Apply(ctx, f.pastJob.ID, f.talent.ID, application.SourceManual)
	assert.ErrorIs(t, err, workflow.ErrDeadlinePassed)

	_, err = f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.Source("REFERRAL"))
	assert.ErrorIs(t, err, workflow.ErrValidation)
}

func TestApply_UnknownTalentIsNotFound(t *testing.T) {
	f := newFixture(t)
	ghost := uuid.New()

	_, err := f.apps.Apply(context.Background(), f.openJob.ID, ghost, application.SourceManual)
	assert.ErrorIs(t, err, workflow.ErrTalentNotFound)
	assert.Zero(t, f.store.ApplicationCount(f.openJob.ID, ghost))

	applicants, err := f.store.Applications().ListApplicantsByJob(context.Background(), f.openJob.ID)
	require.NoError(t, err)
	assert.Empty(t, applicants)
}

func TestApply_SecondAttemptFailsAlreadyApplied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
	require.NoError(t, err)

	_, err = f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
	assert.ErrorIs(t, err, workflow.ErrAlreadyApplied)
	assert.ErrorIs(t, err, workflow.ErrConflict)
	assert.Equal(t, 1, f.store.ApplicationCount(f.openJob.ID, f.talent.ID))
}

func TestApply_ConcurrentAttemptsExactlyOneSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, workflow.ErrAlreadyApplied)
	}
	assert.Equal(t, 1, succeeded)
	// Rows are keyed by application id, so a lost uniqueness check would count above one.
	assert.Equal(t, 1, f.store.ApplicationCount(f.openJob.ID, f.talent.ID))
}

func TestApplyOrSkip_ExistingApplicationIsReturned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	manual, err := f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
	require.NoError(t, err)

	got, created, err := f.apps.ApplyOrSkip(ctx, f.openJob.ID, f.talent.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, manual.ID, got.ID)
	assert.Equal(t, application.SourceManual, got.Source)
}

func TestCreateInvitation_Success(t *testing.T) {
	f := newFixture(t)

	inv, err := f.invitations.Create(context.Background(), f.openJob.ID, f.talent.ID, f.employer.ID)

	require.NoError(t, err)
	assert.Equal(t, invitation.StatusPending, inv.Status)
	assert.Equal(t, f.employer.ID, inv.EmployerID)
	assert.Equal(t, now, inv.CreatedAt)
}

func TestCreateInvitation_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	otherEmployer, err := f.store.Users().Create(ctx, user.User{ID: uuid.New(), Name: "Other", Role: user.RoleEmployer})
	require.NoError(t, err)

	_, err = f.invitations.Create(ctx, uuid.New(), f.talent.ID, f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrJobNotFound)

	_, err = f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, otherEmployer.ID)
	assert.ErrorIs(t, err, workflow.ErrJobNotFound, "a job owned by someone else looks missing")

	_, err = f.invitations.Create(ctx, f.openJob.ID, uuid.New(), f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrTalentNotFound)

	_, err = f.invitations.Create(ctx, f.openJob.ID, otherEmployer.ID, f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrTalentNotFound, "an employer cannot be invited")
}

func TestCreateInvitation_TalentAlreadyApplied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
	require.NoError(t, err)

	_, err = f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrAlreadyApplied)
	assert.ErrorIs(t, err, workflow.ErrConflict)
}

func TestCreateInvitation_DuplicateBlockedEvenAfterDecline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	_, err = f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrAlreadyInvited)

	_, err = f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusDeclined)
	require.NoError(t, err)

	_, err = f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	assert.ErrorIs(t, err, workflow.ErrAlreadyInvited)
}

func TestRespond_AcceptCreatesInvitationApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	got, err := f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusAccepted, got.Status)

	app, err := f.store.Applications().FindByJobAndTalent(ctx, f.openJob.ID, f.talent.ID)
	require.NoError(t, err)
	assert.Equal(t, application.SourceInvitation, app.Source)
}

func TestRespond_DeclineCreatesNoApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	got, err := f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusDeclined)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusDeclined, got.Status)
	assert.Equal(t, 0, f.store.ApplicationCount(f.openJob.ID, f.talent.ID))
}

func TestRespond_AcceptAfterManualApplyKeepsSingleApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)
	_, err = f.apps.Apply(ctx, f.openJob.ID, f.talent.ID, application.SourceManual)
	require.NoError(t, err)

	got, err := f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusAccepted, got.Status)

	app, err := f.store.Applications().FindByJobAndTalent(ctx, f.openJob.ID, f.talent.ID)
	require.NoError(t, err)
	assert.Equal(t, application.SourceManual, app.Source)
	assert.Equal(t, 1, f.store.ApplicationCount(f.openJob.ID, f.talent.ID))
}

func TestRespond_ReplayFailsInvalidState(t *testing.T) {
	for _, first := range []invitation.Status{invitation.StatusAccepted, invitation.StatusDeclined} {
		t.Run(string(first), func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
			require.NoError(t, err)
			_, err = f.invitations.Respond(ctx, inv.ID, f.talent.ID, first)
			require.NoError(t, err)

			for _, again := range []invitation.Status{invitation.StatusAccepted, invitation.StatusDeclined} {
				_, err = f.invitations.Respond(ctx, inv.ID, f.talent.ID, again)
				assert.ErrorIs(t, err, workflow.ErrInvalidState)
			}
			assert.LessOrEqual(t, f.store.ApplicationCount(f.openJob.ID, f.talent.ID), 1)
		})
	}
}

func TestRespond_ExpiredJobLeavesInvitationPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.pastJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	_, err = f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrDeadlinePassed)

	stored, err := f.store.Invitations().GetForTalent(ctx, inv.ID, f.talent.ID)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusPending, stored.Status)
	assert.Equal(t, 0, f.store.ApplicationCount(f.pastJob.ID, f.talent.ID))
}

func TestRespond_NotFoundAndWrongOwnerLookTheSame(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	_, missingErr := f.invitations.Respond(ctx, uuid.New(), f.talent.ID, invitation.StatusAccepted)
	_, foreignErr := f.invitations.Respond(ctx, inv.ID, uuid.New(), invitation.StatusAccepted)

	assert.ErrorIs(t, missingErr, workflow.ErrInvitationNotFound)
	assert.ErrorIs(t, foreignErr, workflow.ErrInvitationNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
}

func TestRespond_RejectsNonResponseStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.invitations.Respond(context.Background(), uuid.New(), f.talent.ID, invitation.StatusPending)
	assert.ErrorIs(t, err, workflow.ErrValidation)
}

func TestRespond_ConcurrentAcceptsTransitionOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusAccepted)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, workflow.ErrInvalidState)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.store.ApplicationCount(f.openJob.ID, f.talent.ID))
}

type failingApplications struct {
	repository.ApplicationRepository
	insertErr error
}

func (r failingApplications) Insert(context.Context, application.Application) (application.Application, error) {
	return application.Application{}, r.insertErr
}

func TestRespond_AcceptPropagatesApplicationFailureAfterCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.wire(failingApplications{ApplicationRepository: f.store.Applications(), insertErr: errors.New("connection reset")}, f.store.Invitations())

	inv, err := f.invitations.Create(ctx, f.openJob.ID, f.talent.ID, f.employer.ID)
	require.NoError(t, err)

	got, err := f.invitations.Respond(ctx, inv.ID, f.talent.ID, invitation.StatusAccepted)
	assert.ErrorIs(t, err, workflow.ErrInternal)
	assert.Equal(t, invitation.StatusAccepted, got.Status)

	stored, err := f.store.Invitations().GetForTalent(ctx, inv.ID, f.talent.ID)
	require.NoError(t, err)
	assert.Equal(t, invitation.StatusAccepted, stored.Status, "the invitation change is already committed")
}

func TestApply_RepositoryFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	f.wire(failingApplications{ApplicationRepository: f.store.Applications(), insertErr: errors.New("disk full")}, f.store.Invitations())

	_, err := f.apps.Apply(context.Background(), f.openJob.ID, f.talent.ID, application.SourceManual)
	assert.ErrorIs(t, err, workflow.ErrInternal)
	assert.Contains(t, err.Error(), "disk full")
}
