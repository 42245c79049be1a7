package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/repository"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/errors"
	"alertacordon/internal/infra/observability"
	"alertacordon/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const (
	defaultListLimit     = 10
	defaultMaxListLimit  = 100
	defaultMapWindowDays = 30
	defaultMaxNearbyM    = 5000.0
)

type reportService struct {
	txManager  repository.TransactionManager
	reportRepo repository.ReportRepository
	locations  usecase.LocationUsecase
	alerts     usecase.AlertUsecase
	publisher  service.EventPublisher
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger

	asyncDispatch   bool
	defaultLimit    int
	maxLimit        int
	mapWindowDays   int
	maxNearbyRadius float64
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReportRepo repository.ReportRepository
	Locations  usecase.LocationUsecase
	Alerts     usecase.AlertUsecase
	Publisher  service.EventPublisher
	Clock      clockwork.Clock
	Config     *config.Config
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}

// NewReportService creates the report use case.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	srv := &reportService{
		txManager:       params.TxManager,
		reportRepo:      params.ReportRepo,
		locations:       params.Locations,
		alerts:          params.Alerts,
		publisher:       params.Publisher,
		clock:           params.Clock,
		metrics:         params.Metrics,
		logger:          params.Logger,
		defaultLimit:    defaultListLimit,
		maxLimit:        defaultMaxListLimit,
		mapWindowDays:   defaultMapWindowDays,
		maxNearbyRadius: defaultMaxNearbyM,
	}

	if params.Config == nil {
		return srv
	}
	if params.Config.Alerts != nil {
		srv.asyncDispatch = params.Config.Alerts.Mode == constants.AlertModeAsync
	}
	if reports := params.Config.Reports; reports != nil {
		if reports.DefaultLimit > 0 {
			srv.defaultLimit = reports.DefaultLimit
		}
		if reports.MaxLimit > 0 {
			srv.maxLimit = reports.MaxLimit
		}
		if reports.MapWindowDays > 0 {
			srv.mapWindowDays = reports.MapWindowDays
		}
		if reports.MaxNearbyRadius > 0 {
			srv.maxNearbyRadius = reports.MaxNearbyRadius
		}
	}

	return srv
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReport stores the report with one pending delivery per alert channel,
// then hands it to dispatch. Dispatch problems never fail the submission.
func (srv *reportService) CreateReport(ctx context.Context, input *usecase.CreateReportInput) (*entity.Report, error) {
	if input == nil {
		return nil, domainerrors.ErrMissingReportFields
	}

	place := strings.TrimSpace(input.Location)
	description := strings.TrimSpace(input.Description)
	if place == "" || description == "" {
		return nil, domainerrors.ErrMissingReportFields
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = entity.DefaultCategory
	}

	resolved := srv.locations.ResolveLocation(ctx, place)
	now := srv.clock.Now()

	report := &entity.Report{
		Location:       place,
		Description:    description,
		Category:       category,
		Latitude:       resolved.Coordinates.Latitude,
		Longitude:      resolved.Coordinates.Longitude,
		LocationSource: string(resolved.Source),
		IsAnonymous:    true,
		CreatedAt:      now,
	}

	channels := srv.alerts.EnabledChannels()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReportRepository().CreateReport(ctx, report); err != nil {
			return errors.Wrap(err, "failed to create report")
		}
		if len(channels) == 0 {
			return nil
		}

		deliveries := make([]*entity.Delivery, 0, len(channels))
		for _, channel := range channels {
			deliveries = append(deliveries, &entity.Delivery{
				ReportID:  report.ID,
				Channel:   channel,
				Status:    entity.DeliveryStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		return errors.Wrap(repoFactory.NewDeliveryRepository().CreateDeliveries(ctx, deliveries), "failed to create deliveries")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store report", slog.String("category", category), slog.Any("error", err))

		return nil, domainerrors.ErrReportCreationFailed.WrapMessage(err.Error())
	}

	srv.metrics.ReportsCreated.WithLabelValues(category).Inc()
	srv.log(ctx).Info("Report stored",
		slog.Int64("reportID", report.ID),
		slog.String("category", category),
		slog.String("locationSource", report.LocationSource),
	)

	srv.dispatch(ctx, report, input.RequestID)

	return report, nil
}

func (srv *reportService) dispatch(ctx context.Context, report *entity.Report, requestID string) {
	if srv.asyncDispatch && srv.publisher != nil {
		event := &service.ReportCreatedEvent{
			RequestID: requestID,
			ReportID:  report.ID,
			Category:  report.Category,
			Latitude:  report.Latitude,
			Longitude: report.Longitude,
			CreatedAt: report.CreatedAt,
		}
		if err := srv.publisher.PublishReportCreated(ctx, event); err != nil {
			srv.metrics.EventsPublished.WithLabelValues("error").Inc()
			srv.log(ctx).Error("Failed to publish report event, retry job will pick it up",
				slog.Int64("reportID", report.ID), slog.Any("error", err))

			return
		}
		srv.metrics.EventsPublished.WithLabelValues("success").Inc()

		return
	}

	result, err := srv.alerts.DispatchReport(ctx, report.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to dispatch alerts", slog.Int64("reportID", report.ID), slog.Any("error", err))

		return
	}
	if len(result.Failed) > 0 {
		srv.log(ctx).Warn("Some alert channels failed", slog.Int64("reportID", report.ID), slog.Any("failed", result.Failed))
	}
}

// ListLatestReports returns the newest visible reports, clamping limit to the configured range.
func (srv *reportService) ListLatestReports(ctx context.Context, limit int) ([]*entity.Report, error) {
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	reports, err := srv.reportRepo.ListLatestReports(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest reports")
	}

	return reports, nil
}

// ListReportsForMap renders the visible reports of the last days as pins.
func (srv *reportService) ListReportsForMap(ctx context.Context, days int) (*geojson.FeatureCollection, error) {
	if days <= 0 {
		days = srv.mapWindowDays
	}

	since := srv.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)
	reports, err := srv.reportRepo.ListReportsSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports for map")
	}

	fc := geojson.NewFeatureCollection()
	for _, report := range reports {
		fc.Append(reportFeature(report))
	}

	return fc, nil
}

func reportFeature(report *entity.Report) *geojson.Feature {
	feature := geojson.NewFeature(report.Coordinates().Point())
	feature.ID = report.ID
	feature.Properties["id"] = report.ID
	feature.Properties["category"] = report.Category
	feature.Properties["label"] = entity.CategoryLabel(report.Category)
	feature.Properties["color"] = entity.CategoryColor(report.Category)
	feature.Properties["location"] = report.Location
	feature.Properties["description"] = report.Description
	feature.Properties["createdAt"] = report.CreatedAt

	return feature
}

// FindNearbyReports filters the map window by great-circle distance.
func (srv *reportService) FindNearbyReports(ctx context.Context, query *usecase.NearbyQuery) ([]*entity.Report, error) {
	if query == nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	center := entity.Coordinates{Latitude: query.Latitude, Longitude: query.Longitude}
	if !center.InRange() {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if query.RadiusMeters <= 0 || query.RadiusMeters > srv.maxNearbyRadius {
		return nil, domainerrors.ErrInvalidInput.WithDetails("radius out of range")
	}

	since := srv.clock.Now().Add(-time.Duration(srv.mapWindowDays) * 24 * time.Hour)
	reports, err := srv.reportRepo.ListReportsSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports for nearby search")
	}

	origin := center.Point()
	nearby := make([]*entity.Report, 0, len(reports))
	for _, report := range reports {
		if geo.Distance(origin, report.Coordinates().Point()) <= query.RadiusMeters {
			nearby = append(nearby, report)
		}
	}

	return nearby, nil
}

// HideReport flags a report so it disappears from every public listing.
func (srv *reportService) HideReport(ctx context.Context, id int64) error {
	if err := srv.reportRepo.HideReport(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return domainerrors.ErrReportNotFound
		}

		return errors.Wrap(err, "failed to hide report")
	}

	srv.log(ctx).Info("Report hidden by moderation", slog.Int64("reportID", id))

	return nil
}
