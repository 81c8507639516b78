package seeder

import (
	"context"

	"talentx/internal/domain/user"
	"talentx/internal/repository"
)

// Target is where fixtures are written.
type Target struct {
	Users        user.Repository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Invitations  repository.InvitationRepository
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, t Target) (int, error)
}
