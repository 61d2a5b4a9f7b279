package handler

import (
	"github.com/eiderao/novva-recruit/internal/service"
	"github.com/eiderao/novva-recruit/internal/usecase"
	"github.com/eiderao/novva-recruit/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// scoresFromBody and rubricFromBody lift the raw JSON of a field out of
// the request body so the wire normalizer sees the original shape.
func scoresFromBody(body []byte) []byte {
	if res := gjson.GetBytes(body, "scores"); res.Exists() {
		return []byte(res.Raw)
	}
	return nil
}

func rubricFromBody(body []byte) []byte {
	if res := gjson.GetBytes(body, "rubric"); res.Exists() {
		return []byte(res.Raw)
	}
	return nil
}

type ApplicationHandler struct {
	appUC   *usecase.ApplicationUsecase
	evalUC  *usecase.EvaluationUsecase
	storage service.StorageServiceInterface
	auth    fiber.Handler
}

func NewApplicationHandler(appUC *usecase.ApplicationUsecase, evalUC *usecase.EvaluationUsecase, storage service.StorageServiceInterface, auth fiber.Handler) *ApplicationHandler {
	return &ApplicationHandler{appUC: appUC, evalUC: evalUC, storage: storage, auth: auth}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	applications := app.Group("/applications", h.auth)
	applications.Get("/hired", h.ListHired)
	applications.Get("/:id", h.Details)
	applications.Post("/:id/evaluation", h.SaveEvaluation)
	applications.Post("/:id/hired", h.SetHired)

	app.Get("/jobs/:id/applicants", h.auth, h.ListApplicants)
	app.Post("/evaluations/preview", h.auth, h.PreviewEvaluation)
	app.Get("/resumes/signed-url", h.auth, h.ResumeSignedURL)
}

func (h *ApplicationHandler) Details(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	detail, err := h.appUC.GetDetails(actorFrom(c), applicationID)
	if err != nil {
		return tenantScopeError(c, err, "application")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    detail,
	})
}

func (h *ApplicationHandler) ListApplicants(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	applicants, pagination, err := h.appUC.ListApplicants(
		actorFrom(c), jobID,
		c.QueryInt("page", 1), c.QueryInt("page_size", 20),
	)
	if err != nil {
		return tenantScopeError(c, err, "job")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Success",
		Data:       applicants,
		Pagination: pagination,
	})
}

type saveEvaluationRequest struct {
	Scores any    `json:"scores"`
	Notes  string `json:"notes"`
}

func (h *ApplicationHandler) SaveEvaluation(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	var req saveEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	// The answer blob is re-read from the raw body so legacy shapes pass
	// through the normalizer untouched by BodyParser's typing.
	result, err := h.evalUC.Save(actorFrom(c), applicationID, scoresFromBody(c.Body()), req.Notes)
	if err != nil {
		return tenantScopeError(c, err, "application")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Evaluation saved",
		Data:    result,
	})
}

type previewRequest struct {
	Rubric any `json:"rubric"`
	Scores any `json:"scores"`
}

func (h *ApplicationHandler) PreviewEvaluation(c *fiber.Ctx) error {
	var req previewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	result := h.evalUC.Preview(rubricFromBody(c.Body()), scoresFromBody(c.Body()))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    result,
	})
}

type setHiredRequest struct {
	IsHired *bool `json:"is_hired"`
}

func (h *ApplicationHandler) SetHired(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	var req setHiredRequest
	if err := c.BodyParser(&req); err != nil || req.IsHired == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "is_hired (boolean) is required",
		}, err)
	}

	if err := h.appUC.SetHired(actorFrom(c), applicationID, *req.IsHired); err != nil {
		return tenantScopeError(c, err, "application")
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Hired status updated",
	})
}

func (h *ApplicationHandler) ListHired(c *fiber.Ctx) error {
	hired, err := h.appUC.ListHired(actorFrom(c))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list hired applicants",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    hired,
	})
}

func (h *ApplicationHandler) ResumeSignedURL(c *fiber.Ctx) error {
	filePath := c.Query("path")
	if filePath == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "path query parameter is required",
		})
	}

	signedURL, err := h.storage.SignedResumeURL(c.Context(), filePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to sign resume url",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    fiber.Map{"signed_url": signedURL},
	})
}
