package routes

import (
	"talentx/internal/delivery/http/handler"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	jobs     *handler.JobsHandler
	employer *handler.EmployerHandler
	talent   *handler.TalentHandler
	auth     *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	jobs *handler.JobsHandler,
	employer *handler.EmployerHandler,
	talent *handler.TalentHandler,
	auth *middleware.AuthMiddleware,
) *Registry {
	return &Registry{health: health, jobs: jobs, employer: employer, talent: talent, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.jobs.RegisterRoutes(api.Group("/jobs"))

	employer := api.Group("/employer", r.auth.Middleware(), middleware.RequireRole(user.RoleEmployer))
	r.employer.RegisterRoutes(employer)

	talent := api.Group("/talent", r.auth.Middleware(), middleware.RequireRole(user.RoleTalent))
	r.talent.RegisterRoutes(talent)
}
