package handler

import (
	"net/http"

	"alertacordon/internal/delivery/http/response"
	"alertacordon/internal/domain/entity"
	"alertacordon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LocationHandler previews where a typed location will be pinned.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(locationUC usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// ResolveLocation handles GET /api/locations/resolve?q=.
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	resolved := h.locationUC.ResolveLocation(c.Request().Context(), c.QueryParam("q"))

	return response.Success(c, http.StatusOK, resolved, "")
}

// ListCategories handles GET /api/categories.
func ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Categories(), "")
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
