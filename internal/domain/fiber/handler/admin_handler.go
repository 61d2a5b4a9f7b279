package handler

import (
	"errors"

	"github.com/eiderao/novva-recruit/internal/usecase"
	"github.com/eiderao/novva-recruit/internal/util"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the read-only back-office routes.
type AdminHandler struct {
	uc   *usecase.AdminUsecase
	auth fiber.Handler
}

func NewAdminHandler(uc *usecase.AdminUsecase, auth fiber.Handler) *AdminHandler {
	return &AdminHandler{uc: uc, auth: auth}
}

func (h *AdminHandler) RegisterRoutes(app *fiber.App) {
	admin := app.Group("/admin", h.auth)
	admin.Get("/tenants", h.ListTenants)
}

func (h *AdminHandler) ListTenants(c *fiber.Ctx) error {
	tenants, err := h.uc.ListTenants(actorFrom(c))
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "admin access required",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list tenants",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Success",
		Data:    tenants,
	})
}
