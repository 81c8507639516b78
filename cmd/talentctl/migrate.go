package main

import (
	"talentx/internal/database/migration"
	"talentx/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, err := opts.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := migration.Runner{FS: migrations.FS, Logger: log}.Run(cmd.Context(), db)
			if err != nil {
				return err
			}
			log.Info("migrations complete", zap.Int("applied", n))
			return nil
		},
	}
}
