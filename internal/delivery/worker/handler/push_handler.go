// Package handler contains the worker's Pub/Sub push handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/domain/constants"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/pubsub"
	"alertacordon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Google attaches to push requests.
type TokenVerifier func(req *http.Request, audience string) error

// PushHandler turns report-created push messages into alert dispatches.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verifyToken    TokenVerifier
	alertUC        usecase.AlertUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified
// for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		verifyToken: verifyPubSubToken,
		alertUC:     params.AlertUC,
		logger:      params.Logger,
	}

	if ps := params.Config.PubSub; ps != nil {
		h.verifyPushAuth = ps.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop
		h.audience = ps.PushAudience
	}

	return h
}

// WithTokenVerifier replaces the OIDC check and forces it on.
func (h *PushHandler) WithTokenVerifier(verifier TokenVerifier) *PushHandler {
	h.verifyPushAuth = true
	h.verifyToken = verifier

	return h
}

// HandlePush handles POST /push. Malformed messages are acknowledged with 400
// so Pub/Sub drops them; persistence failures return 500 to get a redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request(), h.audienceFor(c.Request())); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := decodeEvent(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode report event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	ctx, reqLogger := deliverycontext.Bind(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing report event",
		slog.Int64("report_id", event.ReportID),
		slog.String("category", event.Category),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	result, err := h.alertUC.DispatchReport(ctx, event.ReportID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrReportNotFound) {
			reqLogger.Warn("[Worker] Report not found, dropping event", slog.Int64("report_id", event.ReportID))

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to dispatch report",
			slog.Int64("report_id", event.ReportID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.Info("[Worker] Report dispatched",
		slog.Int64("report_id", event.ReportID),
		slog.Any("delivered", result.Delivered),
		slog.Any("failed", result.Failed),
		slog.Any("skipped", result.Skipped),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEvent(pushMsg *pubsub.PushMessage) (*service.ReportCreatedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.ReportCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal event")
	}

	if event.ReportID <= 0 {
		// Fall back to the attribute set by every publisher.
		id, err := strconv.ParseInt(pushMsg.Message.Attributes["report_id"], 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New("event carries no report id")
		}
		event.ReportID = id
	}

	return &event, nil
}

// extractRequestID prefers message attributes, then the event, then the
// X-Request-Id of the push request, and finally mints one.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.ReportCreatedEvent) string {
	if requestID := pushMsg.Message.Attributes[deliverycontext.FieldRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) audienceFor(req *http.Request) string {
	if h.audience != "" {
		return h.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

// verifyPubSubToken validates the Bearer token of a Google Pub/Sub push request.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
