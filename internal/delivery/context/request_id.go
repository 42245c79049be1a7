// Package context carries the request ID and the request-scoped logger.
//
// On the API side the RequestID middleware accepts or mints an X-Request-Id,
// and CreateReport copies it into ReportCreatedEvent.RequestID. The publisher
// also sends it as the request_id message attribute. The worker's push handler
// reads it back and binds it again, so one ID follows a report from the POST
// to every alert channel log line.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is read from and echoed on HTTP requests.
	HeaderXRequestID = "X-Request-Id"

	// FieldRequestID names the ID in log lines and in event attributes.
	FieldRequestID = "request_id"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// Bind stores requestID in ctx together with base tagged by it, and returns
// both. Use the logger directly or recover it later with GetLoggerOrDefault.
func Bind(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	logger := base.With(slog.String(FieldRequestID, requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// GetRequestID returns the ID of the current HTTP request. Without one set by
// the middleware, an ID is minted and stored so later calls agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(FieldRequestID).(string); ok && id != "" {
		return id
	}

	id := GetRequestIDFromContext(c.Request().Context())
	if id == "" {
		id = uuid.New().String()
	}
	SetRequestID(c, id)

	return id
}

// SetRequestID stores the ID on the echo context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(FieldRequestID, requestID)
}

// GetRequestIDFromContext returns the bound ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request logger bound to ctx, or fallback for
// background work such as the retry job.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
