// Package handler contains the echo handlers of the public API.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/delivery/http/response"
	"alertacordon/internal/delivery/http/validator"
	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	AlertUC  usecase.AlertUsecase
	Logger   *slog.Logger
}

// ReportHandler serves the report form, listings and moderation actions.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	alertUC  usecase.AlertUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		alertUC:  params.AlertUC,
		logger:   params.Logger,
	}
}

// CreateReportRequest is the body of the public form. Presence of location and
// description is checked by the use case so the message matches the form.
type CreateReportRequest struct {
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"max=32"`
}

// CreateReport handles POST /api/reports.
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("malformed JSON body"))
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails(validator.Describe(err)))
	}

	report, err := h.reportUC.CreateReport(c.Request().Context(), &usecase.CreateReportInput{
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		RequestID:   deliverycontext.GetRequestID(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := fmt.Sprintf("🚨 Alerta enviada! Reporte #%d registrado. Los vecinos están más seguros gracias a vos.", report.ID)

	return response.Success(c, http.StatusCreated, report, message)
}

// ListReports handles GET /api/reports. Storage failures degrade to an empty
// list so the public page keeps rendering.
func (h *ReportHandler) ListReports(c echo.Context) error {
	ctx := c.Request().Context()

	reports, err := h.reportUC.ListLatestReports(ctx, queryInt(c, "limit"))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to list reports", slog.Any("error", err))

		return c.JSON(http.StatusOK, []*entity.Report{})
	}

	return c.JSON(http.StatusOK, reports)
}

// ListReportsForMap handles GET /api/reports/map and returns a bare GeoJSON
// FeatureCollection so map libraries can load the URL directly.
func (h *ReportHandler) ListReportsForMap(c echo.Context) error {
	collection, err := h.reportUC.ListReportsForMap(c.Request().Context(), queryInt(c, "days"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, collection)
}

// FindNearbyReports handles GET /api/reports/nearby.
func (h *ReportHandler) FindNearbyReports(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates.WithDetails("lat and lng must be numbers"))
	}

	var radius float64
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("radius must be a number"))
		}
		radius = parsed
	}

	reports, err := h.reportUC.FindNearbyReports(c.Request().Context(), &usecase.NearbyQuery{
		Latitude:     lat,
		Longitude:    lng,
		RadiusMeters: radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// HideReport handles DELETE /api/admin/reports/:id.
func (h *ReportHandler) HideReport(c echo.Context) error {
	id, err := reportID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reportUC.HideReport(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"id": id}, "Reporte ocultado.")
}

// DispatchReport handles POST /api/admin/reports/:id/dispatch.
func (h *ReportHandler) DispatchReport(c echo.Context) error {
	id, err := reportID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.alertUC.DispatchReport(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Alertas reenviadas.")
}

func reportID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrInvalidInput.WithDetails("invalid report id")
	}

	return id, nil
}

// queryInt returns 0 for missing or malformed values so the use case applies its default.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
