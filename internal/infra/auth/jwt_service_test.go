package auth

import (
	"testing"
	"time"

	"alertacordon/config"
	"alertacordon/internal/domain/constants"
	domainerrors "alertacordon/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Admin: &config.AdminConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "alertacordon"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"), clock)
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("moderador", []string{constants.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.Now().Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "moderador", claims.Subject)
	assert.Equal(t, "alertacordon", claims.Issuer)
	assert.Equal(t, []string{constants.RoleAdmin}, claims.Roles)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTService(newTestJWTConfig("secret"), clock)
	require.NoError(t, err)

	token, _, err := svc.GenerateAccessToken("moderador", []string{constants.RoleAdmin})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	svc, err := NewJWTService(newTestJWTConfig("secret"), clock)
	require.NoError(t, err)

	other, err := NewJWTService(newTestJWTConfig("another-secret"), clock)
	require.NoError(t, err)
	foreign, _, err := other.GenerateAccessToken("moderador", []string{constants.RoleAdmin})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "moderador",
		"exp": clock.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": foreign,
		"alg none":     unsigned,
		"garbage":      "not-a-token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""), clockwork.NewRealClock())
	assert.Error(t, err)
}
