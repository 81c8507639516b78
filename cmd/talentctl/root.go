package main

import (
	"context"
	"fmt"

	"talentx/internal/config"
	"talentx/internal/database"
	dbpostgres "talentx/internal/database/postgres"
	"talentx/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "talentctl"

type rootOptions struct {
	envFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           app,
		Short:         "talentctl manages the TalentX database and issues development tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newTokenCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.App.LogLevel
	if o.debug {
		level = "debug"
	}
	log, err := logger.New(level, true)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func (o *rootOptions) connect(ctx context.Context) (config.Config, *zap.Logger, database.DB, error) {
	cfg, log, err := o.load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if !cfg.Database.Enabled() {
		return config.Config{}, nil, nil, fmt.Errorf("DB_HOST is not set")
	}
	db, err := dbpostgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, log, db, nil
}
