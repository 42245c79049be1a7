// Package errors defines the errors the API reports to clients. Messages are
// user facing and written in rioplatense Spanish like the rest of the product.
package errors

import (
	"net/http"

	"alertacordon/internal/errors"
)

// AppError is an error that knows how it should be rendered over HTTP.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable machine-readable code
	Message() string   // Message shown to the user
	Details() string   // Optional diagnostic detail
}

// BaseError is the plain AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context while keeping it matchable with errors.Is.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details. The copy still matches the
// original through Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined errors
var (
	// Report submission
	ErrMissingReportFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Faltan ubicación o descripción.",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Datos inválidos.",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Coordenadas inválidas.",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"No encontramos ese reporte.",
		"",
	)

	ErrReportCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REPORT_CREATION_FAILED",
		"Ups, algo falló. Intentá de nuevo.",
		"",
	)

	// Moderation
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuario o contraseña incorrectos.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Sesión inválida o vencida.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tenés permiso para hacer esto.",
		"",
	)

	ErrModerationDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"MODERATION_DISABLED",
		"La moderación no está configurada.",
		"",
	)
)

// DatabaseExecuteError is returned by repositories when the database rejects
// or fails a statement for reasons the caller cannot fix.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a driver error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error { return e.err }

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }

func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }

func (e *DatabaseExecuteError) Message() string { return "Error de base de datos. Intentá de nuevo." }

func (e *DatabaseExecuteError) Details() string { return e.details }
