package seeder

import (
	"context"
	"errors"
	"time"

	"talentx/internal/domain/application"
	"talentx/internal/domain/invitation"
	"talentx/internal/domain/job"
	"talentx/internal/domain/user"
	"talentx/internal/infrastructure/textgen"
	"talentx/internal/repository"
)

type Describer interface {
	Describe(ctx context.Context, req textgen.Request) string
}

// Defaults returns the seeders for f in dependency order. Every seeder skips
// rows that already exist, so seeding twice is harmless.
func Defaults(f Fixtures, describer Describer, now func() time.Time) []Seeder {
	if now == nil {
		now = time.Now
	}
	return []Seeder{
		UsersSeeder{Fixtures: f.Users, Now: now},
		JobsSeeder{Fixtures: f.Jobs, Describer: describer, Now: now},
		ApplicationsSeeder{Fixtures: f.Applications, Now: now},
		InvitationsSeeder{Fixtures: f.Invitations, Now: now},
	}
}

type UsersSeeder struct {
	Fixtures []UserFixture
	Now      func() time.Time
}

func (UsersSeeder) Name() string { return "users" }

func (s UsersSeeder) Run(ctx context.Context, t Target) (int, error) {
	n := 0
	for i, fx := range s.Fixtures {
		if _, err := t.Users.GetByID(ctx, fx.ID); err == nil {
			continue
		} else if !errors.Is(err, user.ErrNotFound) {
			return n, err
		}
		// Spread creation times so listing order follows the fixture order.
		_, err := t.Users.Create(ctx, user.User{
			ID:        fx.ID,
			Name:      fx.Name,
			Email:     fx.Email,
			Role:      fx.Role,
			CreatedAt: s.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type JobsSeeder struct {
	Fixtures  []JobFixture
	Describer Describer
	Now       func() time.Time
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, t Target) (int, error) {
	describer := s.Describer
	if describer == nil {
		describer = textgen.NewGenerator(nil, 0, nil)
	}

	n := 0
	for i, fx := range s.Fixtures {
		if _, err := t.Jobs.GetByID(ctx, fx.ID); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrJobNotFound) {
			return n, err
		}

		now := s.Now().UTC()
		_, err := t.Jobs.Create(ctx, job.Job{
			ID:          fx.ID,
			Title:       fx.Title,
			CompanyName: fx.CompanyName,
			TechStack:   fx.TechStack,
			Deadline:    now.AddDate(0, 0, fx.DeadlineInDays),
			Description: describer.Describe(ctx, textgen.Request{Title: fx.Title, CompanyName: fx.CompanyName, TechStack: fx.TechStack}),
			EmployerID:  fx.EmployerID,
			CreatedAt:   now.Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type ApplicationsSeeder struct {
	Fixtures []ApplicationFixture
	Now      func() time.Time
}

func (ApplicationsSeeder) Name() string { return "applications" }

func (s ApplicationsSeeder) Run(ctx context.Context, t Target) (int, error) {
	n := 0
	for _, fx := range s.Fixtures {
		_, err := t.Applications.Insert(ctx, application.Application{
			ID:        fx.ID,
			JobID:     fx.JobID,
			TalentID:  fx.TalentID,
			Source:    fx.Source,
			CreatedAt: s.Now().UTC(),
		})
		if errors.Is(err, repository.ErrApplicationExists) {
			continue
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type InvitationsSeeder struct {
	Fixtures []InvitationFixture
	Now      func() time.Time
}

func (InvitationsSeeder) Name() string { return "invitations" }

func (s InvitationsSeeder) Run(ctx context.Context, t Target) (int, error) {
	n := 0
	for _, fx := range s.Fixtures {
		_, err := t.Invitations.CreateUnique(ctx, invitation.Invitation{
			ID:         fx.ID,
			JobID:      fx.JobID,
			TalentID:   fx.TalentID,
			EmployerID: fx.EmployerID,
			Status:     fx.Status,
			CreatedAt:  s.Now().UTC(),
		})
		if errors.Is(err, repository.ErrInvitationExists) {
			continue
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
