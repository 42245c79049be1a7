package postgres

import (
	"context"
	"time"

	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/repository"
	"alertacordon/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// CreateReport persists a new report and copies the generated ID back.
func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingReportFields.WrapMessage("missing required report column")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// FindReportByID retrieves a report regardless of its moderation state.
func (repo *reportRepository) FindReportByID(ctx context.Context, id int64) (*entity.Report, error) {
	var reportM model.ReportModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// ListLatestReports returns the newest visible reports.
func (repo *reportRepository) ListLatestReports(ctx context.Context, limit int) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.visible(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list latest reports")
	}

	return toReportsDomain(reportModels), nil
}

// ListReportsSince returns visible reports created at or after since.
func (repo *reportRepository) ListReportsSince(ctx context.Context, since time.Time) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel

	if err := repo.visible(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC, id DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports since")
	}

	return toReportsDomain(reportModels), nil
}

// HideReport flags the report as moderated.
func (repo *reportRepository) HideReport(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ?", id).
		Update("hidden", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to hide report")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}

func (repo *reportRepository) visible(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Where("hidden = ?", false)
}

func toReportsDomain(reportModels []*model.ReportModel) []*entity.Report {
	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports
}

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:             data.ID,
		Location:       data.Location,
		Description:    data.Description,
		Category:       data.Category,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		LocationSource: data.LocationSource,
		IsAnonymous:    data.IsAnonymous,
		Hidden:         data.Hidden,
		CreatedAt:      data.CreatedAt,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:             data.ID,
		Location:       data.Location,
		Description:    data.Description,
		Category:       data.Category,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		LocationSource: data.LocationSource,
		IsAnonymous:    data.IsAnonymous,
		Hidden:         data.Hidden,
		CreatedAt:      data.CreatedAt,
	}
}
