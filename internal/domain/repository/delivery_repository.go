package repository

import (
	"context"
	"time"

	"alertacordon/internal/domain/entity"
)

// DeliveryRepository stores the per-channel publish state of reports.
type DeliveryRepository interface {
	// CreateDeliveries inserts rows, skipping (report, channel) pairs that already exist.
	CreateDeliveries(ctx context.Context, deliveries []*entity.Delivery) error

	// FindDeliveriesByReport returns every channel row of a report.
	FindDeliveriesByReport(ctx context.Context, reportID int64) ([]*entity.Delivery, error)

	// UpdateDelivery saves status, attempts, last error and timestamps.
	UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindRetryableDeliveries returns pending or failed rows of visible reports with
	// fewer than maxAttempts attempts, last touched before the cutoff, oldest first.
	FindRetryableDeliveries(ctx context.Context, maxAttempts int, before time.Time) ([]*entity.Delivery, error)
}
