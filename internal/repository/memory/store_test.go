package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"talentx/internal/domain/application"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/user"
	"talentx/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seeded struct {
	store    *Store
	employer uuid.UUID
	talent   uuid.UUID
	job      uuid.UUID
}

func newSeeded(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()
	s := seeded{store: NewStore(), employer: uuid.New(), talent: uuid.New(), job: uuid.New()}

	_, err := s.store.Users().Create(ctx, user.User{ID: s.employer, Name: "John Smith", Role: user.RoleEmployer})
	require.NoError(t, err)
	_, err = s.store.Users().Create(ctx, user.User{ID: s.talent, Name: "Alice Johnson", Role: user.RoleTalent})
	require.NoError(t, err)
	_, err = s.store.Jobs().Create(ctx, job.Job{
		ID: s.job, Title: "Dev", CompanyName: "Acme", TechStack: []string{"Go"},
		Deadline: time.Now().Add(time.Hour), EmployerID: s.employer, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return s
}

func (s seeded) newApplication(talentID uuid.UUID) application.Application {
	return application.Application{ID: uuid.New(), JobID: s.job, TalentID: talentID, Source: application.SourceManual, CreatedAt: time.Now()}
}

func TestApplicationInsert_RequiresExistingParents(t *testing.T) {
	s := newSeeded(t)
	apps := s.store.Applications()

	_, err := apps.Insert(context.Background(), s.newApplication(uuid.New()))
	assert.ErrorIs(t, err, user.ErrNotFound)

	a := s.newApplication(s.talent)
	a.JobID = uuid.New()
	_, err = apps.Insert(context.Background(), a)
	assert.ErrorIs(t, err, repository.ErrJobNotFound)

	_, err = apps.Insert(context.Background(), s.newApplication(s.talent))
	require.NoError(t, err)
	_, err = apps.Insert(context.Background(), s.newApplication(s.talent))
	assert.ErrorIs(t, err, repository.ErrApplicationExists)
	assert.Equal(t, 1, s.store.ApplicationCount(s.job, s.talent))
}

func TestApplicationInsert_ConcurrentSamePair(t *testing.T) {
	s := newSeeded(t)
	apps := s.store.Applications()

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := apps.Insert(context.Background(), s.newApplication(s.talent))
			if err != nil && !errors.Is(err, repository.ErrApplicationExists) {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, s.store.ApplicationCount(s.job, s.talent))
}

func TestInvitationCreate_RequiresExistingUsers(t *testing.T) {
	s := newSeeded(t)
	invites := s.store.Invitations()
	inv := invitation.Invitation{
		ID: uuid.New(), JobID: s.job, TalentID: uuid.New(), EmployerID: s.employer,
		Status: invitation.StatusPending, CreatedAt: time.Now(),
	}

	_, err := invites.CreateUnique(context.Background(), inv)
	assert.ErrorIs(t, err, user.ErrNotFound)

	inv.TalentID = s.talent
	inv.EmployerID = uuid.New()
	_, err = invites.CreateUnique(context.Background(), inv)
	assert.ErrorIs(t, err, user.ErrNotFound)

	inv.EmployerID = s.employer
	_, err = invites.CreateUnique(context.Background(), inv)
	require.NoError(t, err)
}
