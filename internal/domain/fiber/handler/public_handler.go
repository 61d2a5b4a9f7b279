package handler

import (
	"errors"
	"time"

	"github.com/eiderao/novva-recruit/internal/middleware"
	"github.com/eiderao/novva-recruit/internal/usecase"
	"github.com/eiderao/novva-recruit/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PublicHandler serves the unauthenticated application-form surface.
type PublicHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewPublicHandler(uc *usecase.ApplicationUsecase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

func (h *PublicHandler) RegisterRoutes(app *fiber.App) {
	public := app.Group("/public")
	public.Get("/jobs/:id", h.JobData)
	// Tighter limit on intake: it is the only unauthenticated write.
	public.Post("/jobs/:id/apply", middleware.RateLimiter(5, 1*time.Minute), h.Apply)
}

func (h *PublicHandler) JobData(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	job, err := h.uc.PublicJobData(jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    job,
	})
}

func (h *PublicHandler) Apply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	var input usecase.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := h.uc.Apply(jobID, input); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingApplicantData),
			errors.Is(err, usecase.ErrResumeRequired):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrNotFound),
			errors.Is(err, usecase.ErrJobUnavailable):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "job is not available",
			})
		case errors.Is(err, usecase.ErrCandidateLimitReached):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "this job is no longer accepting applications",
			})
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "you already applied to this job",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to submit application",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application received",
	})
}
