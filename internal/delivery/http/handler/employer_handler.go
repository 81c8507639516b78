package handler

import (
	"talentx/internal/delivery/http/dto"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type EmployerHandler struct {
	uc usecase.EmployerUsecase
}

func NewEmployerHandler(uc usecase.EmployerUsecase) *EmployerHandler {
	return &EmployerHandler{uc: uc}
}

func (h *EmployerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs")
	grp.Post("/", h.CreateJob)
	grp.Get("/:jobId/applicants", h.ListApplicants)
	grp.Get("/:jobId/matches", h.ListMatches)
	grp.Post("/:jobId/invite", h.Invite)
}

func (h *EmployerHandler) CreateJob(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	deadline, errs := req.Validate()
	if errs != nil {
		return validationError(errs)
	}

	created, err := h.uc.CreateJob(c.Context(), caller, usecase.CreateJobInput{
		Title:       req.Title,
		CompanyName: req.CompanyName,
		TechStack:   req.TechStack,
		Deadline:    deadline,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewJobResponse(created))
}

func (h *EmployerHandler) ListApplicants(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "jobId", "jobId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListApplicants(c.Context(), caller, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicantsResponse(items))
}

func (h *EmployerHandler) ListMatches(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "jobId", "jobId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListMatches(c.Context(), caller, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentMatchesResponse(items))
}

func (h *EmployerHandler) Invite(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "jobId", "jobId")
	if err != nil {
		return err
	}

	var req dto.InviteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	talentID, errs := req.Validate()
	if errs != nil {
		return validationError(errs)
	}

	inv, err := h.uc.Invite(c.Context(), caller, jobID, talentID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewInvitationResponse(inv))
}
