package usecase

import (
	"context"

	"alertacordon/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// CreateReportInput is a submission from the public form.
type CreateReportInput struct {
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	RequestID   string `json:"-"` // Propagated to async events for tracing
}

// NearbyQuery selects reports around a point.
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// ReportUsecase defines the report submission and listing use cases.
type ReportUsecase interface {
	// CreateReport validates, geolocates and stores a report, then triggers alert dispatch.
	CreateReport(ctx context.Context, input *CreateReportInput) (*entity.Report, error)

	// ListLatestReports returns the newest visible reports. limit <= 0 uses the configured default.
	ListLatestReports(ctx context.Context, limit int) ([]*entity.Report, error)

	// ListReportsForMap renders visible reports from the last days as GeoJSON pins.
	ListReportsForMap(ctx context.Context, days int) (*geojson.FeatureCollection, error)

	// FindNearbyReports returns visible reports inside the query radius, newest first.
	FindNearbyReports(ctx context.Context, query *NearbyQuery) ([]*entity.Report, error)

	// HideReport removes a report from every public listing.
	HideReport(ctx context.Context, id int64) error
}
