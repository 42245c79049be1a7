package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims of a moderator session.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates moderator access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for subject carrying roles.
	GenerateAccessToken(subject string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
