package main

import (
	"os"
	"time"

	"talentx/internal/database/seeder"
	"talentx/internal/domain/deadline"
	"talentx/internal/infrastructure/persistence/postgres"
	"talentx/internal/infrastructure/textgen"
	"talentx/internal/repository"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		reset    bool
		fixtures string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo fixtures into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, db, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			f, err := loadFixtures(fixtures)
			if err != nil {
				return err
			}

			if reset {
				log.Warn("truncating all tables")
				if err := seeder.Truncate(cmd.Context(), db); err != nil {
					return err
				}
			}

			// Seeding never calls the AI provider.
			describer := textgen.NewGenerator(nil, cfg.AI.Timeout, log)
			policy := deadline.NewPolicy(time.Now)
			runner := seeder.Runner{Seeders: seeder.Defaults(f, describer, policy.Now), Logger: log}
			return runner.Run(cmd.Context(), seeder.Target{
				Users:        postgres.NewUserRepository(db),
				Jobs:         repository.NewPostgresJobRepository(db),
				Applications: repository.NewPostgresApplicationRepository(db),
				Invitations:  repository.NewPostgresInvitationRepository(db),
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "truncate every table before seeding")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML fixture file (default: embedded demo data)")
	return cmd
}

func loadFixtures(path string) (seeder.Fixtures, error) {
	if path == "" {
		return seeder.DefaultFixtures()
	}
	f, err := os.Open(path)
	if err != nil {
		return seeder.Fixtures{}, err
	}
	defer f.Close()
	return seeder.LoadFixtures(f)
}
