// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alertacordon/internal/delivery/http/middleware"
	"alertacordon/internal/delivery/http/router/handler"
	"alertacordon/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReportHandler   *handler.ReportHandler
	LocationHandler *handler.LocationHandler
	QRCodeHandler   *handler.QRCodeHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Registry        *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	reportHandler   *handler.ReportHandler
	locationHandler *handler.LocationHandler
	qrCodeHandler   *handler.QRCodeHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	registry        *prometheus.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		reportHandler:   params.ReportHandler,
		locationHandler: params.LocationHandler,
		qrCodeHandler:   params.QRCodeHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		registry:        params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))

	api := e.Group("/api")
	{
		api.POST("/reports", r.reportHandler.CreateReport)
		api.GET("/reports", r.reportHandler.ListReports)
		api.GET("/reports/map", r.reportHandler.ListReportsForMap)
		api.GET("/reports/nearby", r.reportHandler.FindNearbyReports)
		api.GET("/categories", handler.ListCategories)
		api.GET("/locations/resolve", r.locationHandler.ResolveLocation)
		api.GET("/qrcode", r.qrCodeHandler.FormQRCode)
		api.POST("/admin/login", r.adminHandler.Login)
	}

	admin := api.Group("/admin/reports")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		admin.DELETE("/:id", r.reportHandler.HideReport)
		admin.POST("/:id/dispatch", r.reportHandler.DispatchReport)
	}
}
