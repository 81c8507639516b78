package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentx/internal/config"
	"talentx/internal/database"
	dbpostgres "talentx/internal/database/postgres"
	"talentx/internal/database/seeder"
	"talentx/internal/domain/deadline"
	"talentx/internal/domain/user"
	"talentx/internal/infrastructure/cache"
	pgpersistence "talentx/internal/infrastructure/persistence/postgres"
	"talentx/internal/infrastructure/textgen"
	"talentx/internal/pkg/jwt"
	"talentx/internal/repository"
	"talentx/internal/repository/memory"

	"go.uber.org/zap"
)

// Container owns every process-wide dependency. DB is nil when the in-memory
// store is in use.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB

	Users        user.Repository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Invitations  repository.InvitationRepository

	Cache     *cache.Redis
	Describer *textgen.Generator
	JWT       jwt.Service
	Policy    deadline.Policy
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{
		Config: cfg,
		Logger: logger,
		JWT:    jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL),
		Policy: deadline.NewPolicy(time.Now),
	}

	c.Describer = textgen.NewGenerator(newTextProvider(ctx, cfg.AI, logger), cfg.AI.Timeout, logger)

	if cfg.Database.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		c.DB = db
		c.useRepositories(seeder.Target{
			Users:        pgpersistence.NewUserRepository(db),
			Jobs:         repository.NewPostgresJobRepository(db),
			Applications: repository.NewPostgresApplicationRepository(db),
			Invitations:  repository.NewPostgresInvitationRepository(db),
		})
	} else {
		logger.Warn("DB_HOST not set, using in-memory store with demo fixtures")
		store := memory.NewStore()
		c.useRepositories(seeder.Target{
			Users:        store.Users(),
			Jobs:         store.Jobs(),
			Applications: store.Applications(),
			Invitations:  store.Invitations(),
		})
		if err := c.Seed(ctx); err != nil {
			return nil, err
		}
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
	return c, nil
}

func (c *Container) useRepositories(t seeder.Target) {
	c.Users = t.Users
	c.Jobs = t.Jobs
	c.Applications = t.Applications
	c.Invitations = t.Invitations
}

func (c *Container) SeedTarget() seeder.Target {
	return seeder.Target{Users: c.Users, Jobs: c.Jobs, Applications: c.Applications, Invitations: c.Invitations}
}

// Seed writes the embedded demo fixtures.
func (c *Container) Seed(ctx context.Context) error {
	f, err := seeder.DefaultFixtures()
	if err != nil {
		return err
	}
	r := seeder.Runner{Seeders: seeder.Defaults(f, c.Describer, c.Policy.Now), Logger: c.Logger}
	return r.Run(ctx, c.SeedTarget())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

func newTextProvider(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) textgen.Provider {
	var (
		p   textgen.Provider
		err error
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err = textgen.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case config.ProviderGemini:
		p, err = textgen.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
	default:
		logger.Info("AI_PROVIDER not set, job descriptions use the template")
		return nil
	}
	if err != nil {
		logger.Warn("text generation disabled", zap.String("provider", cfg.Provider), zap.Error(err))
		return nil
	}
	logger.Info("text generation enabled", zap.String("provider", p.Name()))
	return p
}
