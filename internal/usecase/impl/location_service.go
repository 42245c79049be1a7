package impl

import (
	"context"
	"log/slog"
	"time"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/domain/entity"
	"alertacordon/internal/domain/location"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/observability"
	"alertacordon/internal/usecase"

	"go.uber.org/fx"
)

const defaultGeocodeTimeout = 5 * time.Second

type locationService struct {
	resolver *location.Resolver
	geocoder service.Geocoder
	timeout  time.Duration
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	Resolver *location.Resolver
	Geocoder service.Geocoder `optional:"true"` // nil when online geocoding is disabled
	Config   *config.Config
	Metrics  *observability.Metrics
	Logger   *slog.Logger
}

// NewLocationService creates the location resolution use case.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	timeout := defaultGeocodeTimeout
	if params.Config != nil && params.Config.Geocoding != nil && params.Config.Geocoding.Timeout > 0 {
		timeout = params.Config.Geocoding.Timeout
	}

	return &locationService{
		resolver: params.Resolver,
		geocoder: params.Geocoder,
		timeout:  timeout,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ResolveLocation tries the static strategies first and only asks the online
// geocoder when they would fall back to the default point.
func (s *locationService) ResolveLocation(ctx context.Context, query string) *usecase.ResolvedLocation {
	coords, source := s.resolver.Lookup(query)
	if source == location.SourceDefault && s.geocoder != nil {
		if geocoded, ok := s.geocode(ctx, query); ok {
			coords, source = geocoded, location.SourceGeocoder
		}
	}

	s.metrics.Resolutions.WithLabelValues(string(source)).Inc()

	return &usecase.ResolvedLocation{Coordinates: coords, Source: source}
}

func (s *locationService) geocode(ctx context.Context, query string) (result entity.Coordinates, ok bool) {
	if location.Normalize(query) == "" {
		return result, false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	coords, err := s.geocoder.Geocode(ctx, query)
	if err != nil {
		s.log(ctx).Warn("Geocoding failed, using default location", slog.String("query", query), slog.Any("error", err))

		return result, false
	}
	if coords == nil || !coords.InRange() {
		return result, false
	}

	return *coords, true
}
