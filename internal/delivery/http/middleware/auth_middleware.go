package middleware

import (
	"slices"
	"strings"

	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate
const (
	ContextKeySubject = "subject"
	ContextKeyRoles   = "roles"
)

// AuthMiddleware guards moderation routes with JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores subject and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(ContextKeyRoles).([]string)
			if !slices.Contains(roles, requiredRole) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
