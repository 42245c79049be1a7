package impl

import (
	"context"
	"testing"
	"time"

	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/location"
	"alertacordon/internal/domain/repository"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/observability"
	mockRepo "alertacordon/internal/mocks/repository"
	mockService "alertacordon/internal/mocks/service"
	mockUsecase "alertacordon/internal/mocks/usecase"
	"alertacordon/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reportTestNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type reportTestFixture struct {
	service    *reportService
	txManager  *mockRepo.MockTransactionManager
	reportRepo *mockRepo.MockReportRepository
	locations  *mockUsecase.MockLocationUsecase
	alerts     *mockUsecase.MockAlertUsecase
	publisher  *mockService.MockEventPublisher
	clock      *clockwork.FakeClock
	metrics    *observability.Metrics
}

func createTestReportService(t *testing.T, mode string) *reportTestFixture {
	t.Helper()

	fx := &reportTestFixture{
		txManager:  mockRepo.NewMockTransactionManager(t),
		reportRepo: mockRepo.NewMockReportRepository(t),
		locations:  mockUsecase.NewMockLocationUsecase(t),
		alerts:     mockUsecase.NewMockAlertUsecase(t),
		publisher:  mockService.NewMockEventPublisher(t),
		clock:      clockwork.NewFakeClockAt(reportTestNow),
		metrics:    observability.NewMetricsForTesting(),
	}

	fx.service = NewReportService(ReportServiceParams{
		TxManager:  fx.txManager,
		ReportRepo: fx.reportRepo,
		Locations:  fx.locations,
		Alerts:     fx.alerts,
		Publisher:  fx.publisher,
		Clock:      fx.clock,
		Config:     newAlertTestConfig(mode),
		Metrics:    fx.metrics,
		Logger:     newTestLogger(),
	}).(*reportService)

	return fx
}

// expectStore wires a transaction that assigns reportID and records the created deliveries.
func (fx *reportTestFixture) expectStore(t *testing.T, reportID int64, channels []string, created *[]*entity.Delivery) {
	t.Helper()

	fx.alerts.EXPECT().EnabledChannels().Return(channels)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txReportRepo := mockRepo.NewMockReportRepository(t)

			factory.EXPECT().NewReportRepository().Return(txReportRepo)
			txReportRepo.EXPECT().
				CreateReport(ctx, mock.AnythingOfType("*entity.Report")).
				Run(func(_ context.Context, report *entity.Report) { report.ID = reportID }).
				Return(nil)

			if len(channels) > 0 {
				txDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
				factory.EXPECT().NewDeliveryRepository().Return(txDeliveryRepo)
				txDeliveryRepo.EXPECT().
					CreateDeliveries(ctx, mock.Anything).
					Run(func(_ context.Context, deliveries []*entity.Delivery) { *created = deliveries }).
					Return(nil)
			}

			return fn(factory)
		})
}

func TestReportService_CreateReport_SyncDispatch(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()

	fx.locations.EXPECT().
		ResolveLocation(ctx, "18 de julio y ejido").
		Return(&usecase.ResolvedLocation{
			Coordinates: entity.Coordinates{Latitude: -34.905, Longitude: -56.169},
			Source:      location.SourceExact,
		})

	var created []*entity.Delivery
	fx.expectStore(t, 42, []string{constants.ChannelX, constants.ChannelTelegram}, &created)

	fx.alerts.EXPECT().
		DispatchReport(ctx, int64(42)).
		Return(&usecase.DispatchResult{ReportID: 42, Delivered: []string{constants.ChannelX}, Failed: []string{constants.ChannelTelegram}}, nil)

	report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{
		Location:    "  18 de julio y ejido ",
		Description: "Arrebato de celular en la parada\n",
		Category:    "robo",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), report.ID)
	assert.Equal(t, "18 de julio y ejido", report.Location)
	assert.Equal(t, "Arrebato de celular en la parada", report.Description)
	assert.Equal(t, "robo", report.Category)
	assert.Equal(t, -34.905, report.Latitude)
	assert.Equal(t, -56.169, report.Longitude)
	assert.Equal(t, "exact", report.LocationSource)
	assert.True(t, report.IsAnonymous)
	assert.Equal(t, reportTestNow, report.CreatedAt)

	require.Len(t, created, 2)
	for i, channel := range []string{constants.ChannelX, constants.ChannelTelegram} {
		assert.Equal(t, int64(42), created[i].ReportID)
		assert.Equal(t, channel, created[i].Channel)
		assert.Equal(t, entity.DeliveryStatusPending, created[i].Status)
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(fx.metrics.ReportsCreated.WithLabelValues("robo")))
}

func TestReportService_CreateReport_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateReportInput
	}{
		{name: "nil input"},
		{name: "empty location", input: &usecase.CreateReportInput{Description: "algo"}},
		{name: "blank location", input: &usecase.CreateReportInput{Location: "  \t", Description: "algo"}},
		{name: "empty description", input: &usecase.CreateReportInput{Location: "Cordón"}},
		{name: "blank description", input: &usecase.CreateReportInput{Location: "Cordón", Description: "\n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, constants.AlertModeSync)

			report, err := fx.service.CreateReport(context.Background(), tt.input)

			assert.Nil(t, report)
			assert.ErrorIs(t, err, domainerrors.ErrMissingReportFields)
		})
	}
}

func TestReportService_CreateReport_DefaultCategory(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()

	fx.locations.EXPECT().
		ResolveLocation(ctx, "Cordón").
		Return(&usecase.ResolvedLocation{Coordinates: location.DefaultCoordinates, Source: location.SourceExact})
	fx.expectStore(t, 1, nil, nil)
	fx.alerts.EXPECT().DispatchReport(ctx, int64(1)).Return(&usecase.DispatchResult{ReportID: 1}, nil)

	report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{Location: "Cordón", Description: "Gente rara"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategory, report.Category)
}

func TestReportService_CreateReport_AsyncPublishesEvent(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeAsync)
	ctx := context.Background()

	fx.locations.EXPECT().
		ResolveLocation(ctx, "Rivera y Paullier").
		Return(&usecase.ResolvedLocation{
			Coordinates: entity.Coordinates{Latitude: -34.9075, Longitude: -56.1668},
			Source:      location.SourceExact,
		})
	var created []*entity.Delivery
	fx.expectStore(t, 7, []string{constants.ChannelTelegram}, &created)

	fx.publisher.EXPECT().
		PublishReportCreated(ctx, mock.MatchedBy(func(event *service.ReportCreatedEvent) bool {
			return event.ReportID == 7 &&
				event.RequestID == "req-1" &&
				event.Category == "narcos" &&
				event.CreatedAt.Equal(reportTestNow)
		})).
		Return(nil)

	report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{
		Location:    "Rivera y Paullier",
		Description: "Movimiento raro toda la noche",
		Category:    "narcos",
		RequestID:   "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), report.ID)
	assert.Equal(t, float64(1), testutil.ToFloat64(fx.metrics.EventsPublished.WithLabelValues("success")))
}

func TestReportService_CreateReport_DispatchFailuresDoNotFailCreate(t *testing.T) {
	t.Run("sync dispatch error", func(t *testing.T) {
		fx := createTestReportService(t, constants.AlertModeSync)
		ctx := context.Background()

		fx.locations.EXPECT().ResolveLocation(ctx, "Cordón").
			Return(&usecase.ResolvedLocation{Coordinates: location.DefaultCoordinates, Source: location.SourceExact})
		var created []*entity.Delivery
		fx.expectStore(t, 3, []string{constants.ChannelX}, &created)
		fx.alerts.EXPECT().DispatchReport(ctx, int64(3)).Return(nil, errors.New("db down"))

		report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{Location: "Cordón", Description: "x"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.ID)
	})

	t.Run("async publish error", func(t *testing.T) {
		fx := createTestReportService(t, constants.AlertModeAsync)
		ctx := context.Background()

		fx.locations.EXPECT().ResolveLocation(ctx, "Cordón").
			Return(&usecase.ResolvedLocation{Coordinates: location.DefaultCoordinates, Source: location.SourceExact})
		var created []*entity.Delivery
		fx.expectStore(t, 4, []string{constants.ChannelX}, &created)
		fx.publisher.EXPECT().PublishReportCreated(ctx, mock.Anything).Return(errors.New("broker unavailable"))

		report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{Location: "Cordón", Description: "x"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), report.ID)
		assert.Equal(t, float64(1), testutil.ToFloat64(fx.metrics.EventsPublished.WithLabelValues("error")))
	})
}

func TestReportService_CreateReport_StoreFailure(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()

	fx.locations.EXPECT().ResolveLocation(ctx, "Cordón").
		Return(&usecase.ResolvedLocation{Coordinates: location.DefaultCoordinates, Source: location.SourceExact})
	fx.alerts.EXPECT().EnabledChannels().Return([]string{constants.ChannelX})
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	report, err := fx.service.CreateReport(ctx, &usecase.CreateReportInput{Location: "Cordón", Description: "x"})

	assert.Nil(t, report)
	require.ErrorIs(t, err, domainerrors.ErrReportCreationFailed)
}

func TestReportService_ListLatestReports_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "zero uses default", requested: 0, want: 10},
		{name: "negative uses default", requested: -3, want: 10},
		{name: "within range", requested: 5, want: 5},
		{name: "above max", requested: 500, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, constants.AlertModeSync)
			ctx := context.Background()
			expected := []*entity.Report{{ID: 1}}

			fx.reportRepo.EXPECT().ListLatestReports(ctx, tt.want).Return(expected, nil)

			reports, err := fx.service.ListLatestReports(ctx, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, expected, reports)
		})
	}
}

func TestReportService_ListReportsForMap(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()
	createdAt := reportTestNow.Add(-time.Hour)

	fx.reportRepo.EXPECT().
		ListReportsSince(ctx, reportTestNow.Add(-7*24*time.Hour)).
		Return([]*entity.Report{{
			ID:          9,
			Location:    "Rivera y Paullier",
			Description: "Robo de bici",
			Category:    "robo",
			Latitude:    -34.9075,
			Longitude:   -56.1668,
			CreatedAt:   createdAt,
		}}, nil)

	fc, err := fx.service.ListReportsForMap(ctx, 7)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, orb.Point{-56.1668, -34.9075}, feature.Geometry)

	want := geojson.Properties{
		"id":          int64(9),
		"category":    "robo",
		"label":       "Robo/Atraco",
		"color":       "#ef4444",
		"location":    "Rivera y Paullier",
		"description": "Robo de bici",
		"createdAt":   createdAt,
	}
	if diff := cmp.Diff(want, feature.Properties); diff != "" {
		t.Errorf("feature properties mismatch (-want +got):\n%s", diff)
	}
}

func TestReportService_ListReportsForMap_DefaultWindow(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()

	fx.reportRepo.EXPECT().
		ListReportsSince(ctx, reportTestNow.Add(-30*24*time.Hour)).
		Return(nil, nil)

	fc, err := fx.service.ListReportsForMap(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestReportService_FindNearbyReports(t *testing.T) {
	fx := createTestReportService(t, constants.AlertModeSync)
	ctx := context.Background()

	near := &entity.Report{ID: 1, Latitude: -34.9060, Longitude: -56.1668}
	far := &entity.Report{ID: 2, Latitude: -34.8800, Longitude: -56.1668}

	fx.reportRepo.EXPECT().
		ListReportsSince(ctx, reportTestNow.Add(-30*24*time.Hour)).
		Return([]*entity.Report{near, far}, nil)

	reports, err := fx.service.FindNearbyReports(ctx, &usecase.NearbyQuery{
		Latitude:     -34.9075,
		Longitude:    -56.1668,
		RadiusMeters: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, []*entity.Report{near}, reports)
}

func TestReportService_FindNearbyReports_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query *usecase.NearbyQuery
		want  error
	}{
		{name: "latitude out of range", query: &usecase.NearbyQuery{Latitude: -95, Longitude: -56, RadiusMeters: 100}, want: domainerrors.ErrInvalidCoordinates},
		{name: "longitude out of range", query: &usecase.NearbyQuery{Latitude: -34, Longitude: 190, RadiusMeters: 100}, want: domainerrors.ErrInvalidCoordinates},
		{name: "zero radius", query: &usecase.NearbyQuery{Latitude: -34.9, Longitude: -56.1}, want: domainerrors.ErrInvalidInput},
		{name: "radius too large", query: &usecase.NearbyQuery{Latitude: -34.9, Longitude: -56.1, RadiusMeters: 50000}, want: domainerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReportService(t, constants.AlertModeSync)

			reports, err := fx.service.FindNearbyReports(context.Background(), tt.query)

			assert.Nil(t, reports)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReportService_HideReport(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestReportService(t, constants.AlertModeSync)
		ctx := context.Background()

		fx.reportRepo.EXPECT().HideReport(ctx, int64(5)).Return(nil)

		require.NoError(t, fx.service.HideReport(ctx, 5))
	})

	t.Run("unknown report", func(t *testing.T) {
		fx := createTestReportService(t, constants.AlertModeSync)
		ctx := context.Background()

		fx.reportRepo.EXPECT().HideReport(ctx, int64(99)).Return(repository.ErrReportNotFound)

		err := fx.service.HideReport(ctx, 99)
		assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
	})
}
