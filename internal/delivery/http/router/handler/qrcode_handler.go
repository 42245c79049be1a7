package handler

import (
	"net/http"

	"alertacordon/config"
	"alertacordon/internal/delivery/http/response"
	"alertacordon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// QRCodeHandler renders the QR code printed on neighbourhood flyers.
type QRCodeHandler struct {
	qrSvc     service.QRCodeService
	publicURL string
}

// NewQRCodeHandler is the constructor for QRCodeHandler
func NewQRCodeHandler(qrSvc service.QRCodeService, cfg *config.Config) *QRCodeHandler {
	return &QRCodeHandler{qrSvc: qrSvc, publicURL: cfg.HTTP.PublicURL}
}

// FormQRCode handles GET /api/qrcode. Without a configured public URL the
// code points at the host the request came in on.
func (h *QRCodeHandler) FormQRCode(c echo.Context) error {
	target := h.publicURL
	if target == "" {
		target = c.Scheme() + "://" + c.Request().Host + "/"
	}

	png, err := h.qrSvc.GenerateURLCode(target)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
