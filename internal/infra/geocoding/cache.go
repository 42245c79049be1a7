package geocoding

import (
	"context"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/domain/location"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/observability"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache keyed by the
// normalized query.
type CachedGeocoder struct {
	inner   service.Geocoder
	cache   *lru.Cache[string, entity.Coordinates]
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner service.Geocoder, maxEntries int, metrics *observability.Metrics) (*CachedGeocoder, error) {
	cache, err := lru.New[string, entity.Coordinates](maxEntries)
	if err != nil {
		return nil, err
	}

	return &CachedGeocoder{
		inner:   inner,
		cache:   cache,
		metrics: metrics,
	}, nil
}

func (c *CachedGeocoder) Geocode(ctx context.Context, query string) (*entity.Coordinates, error) {
	key := location.Normalize(query)
	if coords, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()

		return &coords, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	coords, err := c.inner.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}
	// Only cache matches so transient "not found" responses can be retried.
	if coords != nil {
		c.cache.Add(key, *coords)
	}

	return coords, nil
}

// Len returns the number of cached entries.
func (c *CachedGeocoder) Len() int {
	return c.cache.Len()
}
