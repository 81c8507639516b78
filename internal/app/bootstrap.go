package app

import (
	"context"
	"fmt"
	"strings"

	"talentx/internal/config"
	"talentx/internal/delivery/http/handler"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/delivery/http/routes"
	"talentx/internal/usecase"
	"talentx/internal/usecase/workflow"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application over an existing container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registry(c *Container) *routes.Registry {
	applications := workflow.NewApplications(c.Jobs, c.Applications, c.Policy)
	invitations := workflow.NewInvitations(c.Jobs, c.Users, c.Applications, c.Invitations, applications, c.Policy)

	employerUC := usecase.NewEmployerUsecase(c.Jobs, c.Users, c.Applications, invitations, c.Describer, c.Cache, c.Policy, c.Logger)
	talentUC := usecase.NewTalentUsecase(c.Jobs, c.Invitations, applications, invitations, c.Cache, c.Policy, c.Logger)
	jobsUC := usecase.NewJobUsecase(c.Jobs, c.Cache, c.Policy, c.Logger)

	return routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.Environment),
		handler.NewJobsHandler(jobsUC),
		handler.NewEmployerHandler(employerUC),
		handler.NewTalentHandler(talentUC),
		middleware.NewAuthMiddleware(c.JWT),
	)
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
