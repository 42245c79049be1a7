package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/domain/constants"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/errors"
	"alertacordon/internal/usecase"

	"go.uber.org/fx"
)

type adminService struct {
	username     string
	passwordHash string
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService creates the moderator login use case.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Admin != nil {
		srv.username = params.Config.Admin.Username
		srv.passwordHash = params.Config.Admin.PasswordHash
	}

	return srv
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the configured moderator credentials and issues an access token.
func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.AdminSession, error) {
	if srv.username == "" || srv.passwordHash == "" {
		return nil, domainerrors.ErrModerationDisabled
	}

	userMatches := subtle.ConstantTimeCompare([]byte(username), []byte(srv.username)) == 1
	passwordMatches := srv.hasher.Check(password, srv.passwordHash)
	if !userMatches || !passwordMatches {
		srv.log(ctx).Warn("Rejected moderator login", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(srv.username, []string{constants.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Moderator logged in", slog.String("username", srv.username))

	return &usecase.AdminSession{AccessToken: token, ExpiresAt: expiresAt}, nil
}
