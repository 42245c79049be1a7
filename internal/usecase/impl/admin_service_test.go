package impl

import (
	"context"
	"testing"
	"time"

	"alertacordon/config"
	"alertacordon/internal/domain/constants"
	domainerrors "alertacordon/internal/domain/errors"
	mockService "alertacordon/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminTestFixture struct {
	service      *adminService
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAdminService(t *testing.T, admin *config.AdminConfig) *adminTestFixture {
	t.Helper()

	fx := &adminTestFixture{
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       &config.Config{Admin: admin},
		Logger:       newTestLogger(),
	}).(*adminService)

	return fx
}

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t, &config.AdminConfig{Username: "moderador", PasswordHash: "$2a$hash"})
	expiresAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	fx.hasher.EXPECT().Check("secreto", "$2a$hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken("moderador", []string{constants.RoleAdmin}).
		Return("signed-token", expiresAt, nil)

	session, err := fx.service.Login(context.Background(), "moderador", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.AccessToken)
	assert.Equal(t, expiresAt, session.ExpiresAt)
}

func TestAdminService_Login_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		hashMatch bool
	}{
		{name: "wrong password", username: "moderador", password: "nope", hashMatch: false},
		{name: "wrong username", username: "otro", password: "secreto", hashMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t, &config.AdminConfig{Username: "moderador", PasswordHash: "$2a$hash"})

			fx.hasher.EXPECT().Check(tt.password, "$2a$hash").Return(tt.hashMatch)

			session, err := fx.service.Login(context.Background(), tt.username, tt.password)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAdminService_Login_NotConfigured(t *testing.T) {
	fx := createTestAdminService(t, nil)

	session, err := fx.service.Login(context.Background(), "moderador", "secreto")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domainerrors.ErrModerationDisabled)
}

func TestAdminService_Login_TokenFailure(t *testing.T) {
	fx := createTestAdminService(t, &config.AdminConfig{Username: "moderador", PasswordHash: "$2a$hash"})

	fx.hasher.EXPECT().Check("secreto", "$2a$hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateAccessToken("moderador", []string{constants.RoleAdmin}).
		Return("", time.Time{}, errors.New("signing failed"))

	session, err := fx.service.Login(context.Background(), "moderador", "secreto")
	assert.Nil(t, session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing failed")
}
