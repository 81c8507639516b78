package handler

import (
	"talentx/internal/delivery/http/dto"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TalentHandler struct {
	uc usecase.TalentUsecase
}

func NewTalentHandler(uc usecase.TalentUsecase) *TalentHandler {
	return &TalentHandler{uc: uc}
}

func (h *TalentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs/:jobId/apply", h.Apply)
	r.Get("/job-feed", h.JobFeed)
	r.Get("/invitations", h.ListInvitations)
	r.Post("/invitations/:id/respond", h.Respond)
}

func (h *TalentHandler) Apply(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	jobID, err := pathUUID(c, "jobId", "jobId")
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if errs := req.Validate(); errs != nil {
		return validationError(errs)
	}

	app, err := h.uc.Apply(c.Context(), caller, jobID, req.Source)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewApplicationResponse(app))
}

func (h *TalentHandler) JobFeed(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.JobFeed(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFeedResponse(items))
}

func (h *TalentHandler) ListInvitations(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListInvitations(c.Context(), caller)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTalentInvitationsResponse(items))
}

func (h *TalentHandler) Respond(c fiber.Ctx) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}
	invitationID, err := pathUUID(c, "id", "id")
	if err != nil {
		return err
	}

	var req dto.RespondRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if errs := req.Validate(); errs != nil {
		return validationError(errs)
	}

	inv, err := h.uc.RespondToInvitation(c.Context(), caller, invitationID, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInvitationResponse(inv))
}
