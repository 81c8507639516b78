package handler

import (
	"errors"

	"talentx/internal/delivery/http/dto"
	"talentx/internal/delivery/http/middleware"
	"talentx/internal/domain/user"
	"talentx/internal/pkg/response"
	"talentx/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Insufficient permissions", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrTalentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Talent not found", nil, err)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Invitation not found", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Talent has already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrAlreadyInvited):
		return middleware.NewAppError(fiber.StatusConflict, "Invitation already sent to this talent", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageConflict, nil, err)
	case errors.Is(err, usecase.ErrInvalidState):
		return middleware.NewAppError(fiber.StatusConflict, "Invitation has already been responded to", nil, err)
	case errors.Is(err, usecase.ErrDeadlinePassed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job deadline has passed", nil, err)
	case errors.Is(err, usecase.ErrDeadlineNotInFuture):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, dto.FieldErrors{"deadline": "Deadline must be in the future"}, err)
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func validationError(errs dto.FieldErrors) error {
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, errs, nil)
}

func bindBody(c fiber.Ctx, out any) error {
	errs, err := dto.DecodeBody(c.Body(), out)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if errs != nil {
		return validationError(errs)
	}
	return nil
}

func pathUUID(c fiber.Ctx, name, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid parameters", dto.FieldErrors{field: "Invalid " + field}, err)
	}
	return id, nil
}

func identity(c fiber.Ctx) (user.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return user.Identity{}, middleware.NewAppError(fiber.StatusUnauthorized, "Authentication required", nil, nil)
	}
	return id, nil
}
