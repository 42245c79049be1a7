//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "alertacordon",
			"POSTGRES_USER":     "cordon",
			"POSTGRES_PASSWORD": "cordon",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := "postgres://cordon:cordon@" + host + ":" + port.Port() + "/alertacordon?sslmode=disable"
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	return db
}

func newReport(location string, createdAt time.Time) *entity.Report {
	return &entity.Report{
		Location:       location,
		Description:    "dos personas en moto",
		Category:       "robo",
		Latitude:       -34.905,
		Longitude:      -56.169,
		LocationSource: "exact",
		IsAnonymous:    true,
		CreatedAt:      createdAt,
	}
}

func TestReportAndDeliveryRepositories(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	reports := NewReportRepository(db)
	deliveries := NewDeliveryRepository(db)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	older := newReport("cordón", base.Add(-time.Hour))
	newer := newReport("18 de julio y ejido", base)
	require.NoError(t, reports.CreateReport(ctx, older))
	require.NoError(t, reports.CreateReport(ctx, newer))
	assert.Positive(t, older.ID)
	assert.Greater(t, newer.ID, older.ID)

	t.Run("latest is newest first", func(t *testing.T) {
		latest, err := reports.ListLatestReports(ctx, 10)
		require.NoError(t, err)
		require.Len(t, latest, 2)
		assert.Equal(t, newer.ID, latest[0].ID)
		assert.True(t, latest[0].IsAnonymous)
	})

	t.Run("since filters by creation time", func(t *testing.T) {
		since, err := reports.ListReportsSince(ctx, base.Add(-time.Minute))
		require.NoError(t, err)
		require.Len(t, since, 1)
		assert.Equal(t, newer.ID, since[0].ID)
	})

	t.Run("deliveries are unique per channel", func(t *testing.T) {
		rows := []*entity.Delivery{
			{ReportID: older.ID, Channel: "x", Status: entity.DeliveryStatusPending, UpdatedAt: base.Add(-time.Hour)},
			{ReportID: older.ID, Channel: "telegram", Status: entity.DeliveryStatusPending, UpdatedAt: base.Add(-time.Hour)},
		}
		require.NoError(t, deliveries.CreateDeliveries(ctx, rows))
		require.NoError(t, deliveries.CreateDeliveries(ctx, rows[:1]))

		found, err := deliveries.FindDeliveriesByReport(ctx, older.ID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "telegram", found[0].Channel)
	})

	t.Run("update and retry selection", func(t *testing.T) {
		delivered := &entity.Delivery{ReportID: older.ID, Channel: "x"}
		delivered.MarkDelivered(base.Add(-30 * time.Minute))
		require.NoError(t, deliveries.UpdateDelivery(ctx, delivered))

		failed := &entity.Delivery{ReportID: older.ID, Channel: "telegram"}
		failed.MarkFailed(base.Add(-30*time.Minute), assert.AnError)
		require.NoError(t, deliveries.UpdateDelivery(ctx, failed))

		retryable, err := deliveries.FindRetryableDeliveries(ctx, 5, base)
		require.NoError(t, err)
		require.Len(t, retryable, 1)
		assert.Equal(t, "telegram", retryable[0].Channel)
		assert.Equal(t, 1, retryable[0].Attempts)
		assert.Equal(t, assert.AnError.Error(), retryable[0].LastError)

		retryable, err = deliveries.FindRetryableDeliveries(ctx, 1, base)
		require.NoError(t, err)
		assert.Empty(t, retryable)
	})

	t.Run("hidden reports disappear", func(t *testing.T) {
		require.NoError(t, reports.HideReport(ctx, older.ID))

		latest, err := reports.ListLatestReports(ctx, 10)
		require.NoError(t, err)
		require.Len(t, latest, 1)

		hidden, err := reports.FindReportByID(ctx, older.ID)
		require.NoError(t, err)
		assert.True(t, hidden.Hidden)

		retryable, err := deliveries.FindRetryableDeliveries(ctx, 5, base)
		require.NoError(t, err)
		assert.Empty(t, retryable)
	})

	t.Run("unknown ids", func(t *testing.T) {
		_, err := reports.FindReportByID(ctx, 9999)
		assert.ErrorIs(t, err, repository.ErrReportNotFound)
		assert.ErrorIs(t, reports.HideReport(ctx, 9999), repository.ErrReportNotFound)

		err = deliveries.CreateDeliveries(ctx, []*entity.Delivery{{ReportID: 9999, Channel: "x", Status: entity.DeliveryStatusPending}})
		assert.ErrorIs(t, err, repository.ErrReportNotFound)
	})
}

func TestTransactionManagerRollsBack(t *testing.T) {
	db := setupTestDatabase(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		report := newReport("cordón", time.Now())
		if err := factory.NewReportRepository().CreateReport(ctx, report); err != nil {
			return err
		}

		return factory.NewDeliveryRepository().CreateDeliveries(ctx, []*entity.Delivery{
			{ReportID: report.ID + 1000, Channel: "x", Status: entity.DeliveryStatusPending},
		})
	})
	require.Error(t, err)

	latest, err := NewReportRepository(db).ListLatestReports(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, latest)
}
