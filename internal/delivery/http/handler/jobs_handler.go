package handler

import (
	"strings"

	"talentx/internal/delivery/http/dto"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler serves the public job board.
type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
	r.Get("/:jobId", h.Get)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListJobs(c.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(items))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	jobID, err := pathUUID(c, "jobId", "jobId")
	if err != nil {
		return err
	}
	d, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailsResponse(d))
}
