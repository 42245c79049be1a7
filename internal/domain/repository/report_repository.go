// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"alertacordon/internal/domain/entity"
	"alertacordon/internal/errors"
)

// ErrReportNotFound is returned when no report has the requested ID.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository stores incident reports.
type ReportRepository interface {
	// CreateReport persists a report and fills in its generated ID.
	CreateReport(ctx context.Context, report *entity.Report) error

	// FindReportByID returns ErrReportNotFound when the ID is unknown. Hidden reports are returned.
	FindReportByID(ctx context.Context, id int64) (*entity.Report, error)

	// ListLatestReports returns up to limit visible reports, newest first.
	ListLatestReports(ctx context.Context, limit int) ([]*entity.Report, error)

	// ListReportsSince returns visible reports created at or after since, newest first.
	ListReportsSince(ctx context.Context, since time.Time) ([]*entity.Report, error)

	// HideReport flags a report as moderated. Returns ErrReportNotFound when the ID is unknown.
	HideReport(ctx context.Context, id int64) error
}
