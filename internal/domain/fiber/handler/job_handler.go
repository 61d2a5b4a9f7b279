package handler

import (
	"errors"

	"github.com/eiderao/novva-recruit/internal/middleware"
	"github.com/eiderao/novva-recruit/internal/usecase"
	"github.com/eiderao/novva-recruit/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc   *usecase.JobUsecase
	auth fiber.Handler
}

func NewJobHandler(uc *usecase.JobUsecase, auth fiber.Handler) *JobHandler {
	return &JobHandler{uc: uc, auth: auth}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	jobs := app.Group("/jobs", h.auth)
	jobs.Post("/", h.Create)
	jobs.Get("/", h.List)
	jobs.Get("/:id", h.Get)
	jobs.Put("/:id/rubric", h.UpdateRubric)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var input usecase.CreateJobInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	job, err := h.uc.CreateJob(actorFrom(c), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTitleRequired):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "job title is required",
			})
		case errors.Is(err, usecase.ErrJobLimitReached):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "active job limit reached for your plan",
			})
		default:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "failed to create job",
			}, err)
		}
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created",
		Data:    job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, meta, err := h.uc.ListJobs(actorFrom(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    jobs,
		Meta:    meta,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	job, err := h.uc.GetJob(actorFrom(c), jobID)
	if err != nil {
		return tenantScopeError(c, err, "job")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    job,
	})
}

func (h *JobHandler) UpdateRubric(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	def, err := h.uc.UpdateRubric(actorFrom(c), jobID, c.Body())
	if err != nil {
		var invalid *usecase.RubricInvalidError
		if errors.As(err, &invalid) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "rubric failed validation",
				Details: invalid.Errors,
			})
		}
		return tenantScopeError(c, err, "job")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Rubric saved",
		Data:    def,
	})
}

func actorFrom(c *fiber.Ctx) usecase.Actor {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return usecase.Actor{}
	}
	return usecase.Actor{
		UserID:   identity.UserID,
		Name:     identity.Name,
		TenantID: identity.TenantID,
		IsAdmin:  identity.IsAdmin,
	}
}

// tenantScopeError keeps "does not exist" and "belongs to another tenant"
// as distinct responses.
func tenantScopeError(c *fiber.Ctx, err error, record string) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: record + " not found",
		})
	case errors.Is(err, usecase.ErrForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: "you do not have access to this " + record,
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "internal error",
		}, err)
	}
}
