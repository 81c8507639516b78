package seeder

import (
	"context"
	"fmt"

	"talentx/internal/database"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, t Target) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx, t)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", zap.String("seeder", s.Name()), zap.Int("created", n))
	}
	return nil
}

// Truncate empties every domain table.
func Truncate(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	_, err := db.Exec(ctx, `TRUNCATE invitations, applications, jobs, users`)
	return err
}
