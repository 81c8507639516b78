package handler

import (
	"time"

	"talentx/internal/delivery/http/dto"
	"talentx/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	environment string
	now         func() time.Time
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":      "OK",
		"timestamp":   dto.FormatTime(h.now()),
		"environment": h.environment,
	})
}
