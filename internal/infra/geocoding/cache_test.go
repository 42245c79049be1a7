package geocoding

import (
	"context"
	"testing"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/infra/observability"
	mockService "alertacordon/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedGeocoder_CachesMatchesByNormalizedQuery(t *testing.T) {
	inner := mockService.NewMockGeocoder(t)
	metrics := observability.NewMetricsForTesting()
	cached, err := NewCachedGeocoder(inner, 8, metrics)
	require.NoError(t, err)

	want := &entity.Coordinates{Latitude: -34.9011, Longitude: -56.1722}
	inner.EXPECT().Geocode(mock.Anything, "Plaza Seregni").Return(want, nil).Once()

	first, err := cached.Geocode(context.Background(), "Plaza Seregni")
	require.NoError(t, err)
	second, err := cached.Geocode(context.Background(), "  plaza seregni ")
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.Equal(t, 1, cached.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.GeocodeCache.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.GeocodeCache.WithLabelValues("miss")))
}

func TestCachedGeocoder_DoesNotCacheMissesOrErrors(t *testing.T) {
	inner := mockService.NewMockGeocoder(t)
	cached, err := NewCachedGeocoder(inner, 8, observability.NewMetricsForTesting())
	require.NoError(t, err)

	inner.EXPECT().Geocode(mock.Anything, "Atlántida").Return(nil, nil).Twice()
	inner.EXPECT().Geocode(mock.Anything, "Prado").Return(nil, errors.New("timeout")).Twice()

	for range 2 {
		coords, err := cached.Geocode(context.Background(), "Atlántida")
		require.NoError(t, err)
		assert.Nil(t, coords)

		_, err = cached.Geocode(context.Background(), "Prado")
		require.Error(t, err)
	}
	assert.Zero(t, cached.Len())
}

func TestCachedGeocoder_EvictsLeastRecentlyUsed(t *testing.T) {
	inner := mockService.NewMockGeocoder(t)
	cached, err := NewCachedGeocoder(inner, 1, observability.NewMetricsForTesting())
	require.NoError(t, err)

	inner.EXPECT().Geocode(mock.Anything, "a").Return(&entity.Coordinates{Latitude: 1}, nil).Twice()
	inner.EXPECT().Geocode(mock.Anything, "b").Return(&entity.Coordinates{Latitude: 2}, nil).Once()

	_, _ = cached.Geocode(context.Background(), "a")
	_, _ = cached.Geocode(context.Background(), "b")
	_, _ = cached.Geocode(context.Background(), "a")

	assert.Equal(t, 1, cached.Len())
}

func TestNewCachedGeocoder_InvalidSize(t *testing.T) {
	_, err := NewCachedGeocoder(mockService.NewMockGeocoder(t), 0, observability.NewMetricsForTesting())
	assert.Error(t, err)
}
