package geocoding

import (
	"log/slog"

	"alertacordon/config"
	"alertacordon/internal/domain/location"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/observability"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the location providers
type Params struct {
	fx.In

	Config  *config.Config
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// NewResolver builds the static resolver from the built-in table plus the
// optional known-locations file.
func NewResolver(params Params) (*location.Resolver, error) {
	cfg := params.Config.Geocoding
	if cfg == nil || cfg.KnownLocationsFile == "" {
		return location.NewResolver(), nil
	}

	extra, err := location.LoadKnownLocations(cfg.KnownLocationsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load known locations")
	}

	resolver := location.NewResolver(extra...)
	params.Logger.Info("Loaded known locations",
		slog.String("file", cfg.KnownLocationsFile),
		slog.Int("extra", len(extra)),
		slog.Int("total", resolver.Len()),
	)

	return resolver, nil
}

// NewGeocoder returns the cached Nominatim client, or nil when online
// geocoding is disabled.
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Online geocoding disabled, using the known-location table only")

		return nil, nil
	}

	client := NewNominatimClient(cfg.BaseURL, cfg.UserAgent, cfg.CitySuffix, cfg.Timeout, params.Metrics, params.Logger)

	cached, err := NewCachedGeocoder(client, cfg.CacheSize, params.Metrics)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocoding cache")
	}

	params.Logger.Info("Online geocoding enabled", slog.String("baseURL", cfg.BaseURL), slog.Int("cacheSize", cfg.CacheSize))

	return cached, nil
}
