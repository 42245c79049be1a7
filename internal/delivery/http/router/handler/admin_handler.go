package handler

import (
	"net/http"

	"alertacordon/internal/delivery/http/response"
	"alertacordon/internal/delivery/http/validator"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler issues moderator sessions.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

// LoginRequest is the moderator login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails(validator.Describe(err)))
	}

	session, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "")
}
