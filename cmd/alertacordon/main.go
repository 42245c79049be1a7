package main

import (
	"context"
	"log/slog"
	"os"

	"alertacordon/config"
	"alertacordon/internal/delivery"
	"alertacordon/internal/delivery/http"
	"alertacordon/internal/delivery/http/middleware"
	"alertacordon/internal/delivery/http/router/handler"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/alerting"
	"alertacordon/internal/infra/auth"
	"alertacordon/internal/infra/geocoding"
	logs "alertacordon/internal/infra/log"
	"alertacordon/internal/infra/observability"
	"alertacordon/internal/infra/persistence/postgres"
	"alertacordon/internal/infra/pubsub"
	"alertacordon/internal/infra/qrcode"
	"alertacordon/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		clockwork.NewRealClock,
		observability.NewRegistry,
		observability.NewMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReportRepository,
			postgres.NewDeliveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocoding.NewResolver,
			geocoding.NewGeocoder,
			newQRCodeService,
			fx.Annotate(
				alerting.NewChannels,
				fx.ResultTags(`group:"alert_channels,flatten"`),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewAlertService,
			impl.NewReportService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReportHandler,
			handler.NewLocationHandler,
			handler.NewQRCodeHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
