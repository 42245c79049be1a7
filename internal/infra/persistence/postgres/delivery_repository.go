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
	"gorm.io/gorm/clause"
)

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// CreateDeliveries inserts rows and leaves existing (report, channel) pairs untouched.
// Generated IDs are not copied back: RETURNING skips conflicting rows, so
// they cannot be matched to the input positionally.
func (repo *deliveryRepository) CreateDeliveries(ctx context.Context, deliveries []*entity.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	deliveryModels := make([]*model.DeliveryModel, 0, len(deliveries))
	for _, delivery := range deliveries {
		deliveryModels = append(deliveryModels, fromDeliveryDomain(delivery))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "report_id"}, {Name: "channel"}},
			DoNothing: true,
		}).
		Create(&deliveryModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReportNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deliveries")
	}

	return nil
}

// FindDeliveriesByReport returns every channel row of a report ordered by channel.
func (repo *deliveryRepository) FindDeliveriesByReport(ctx context.Context, reportID int64) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("channel ASC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by report")
	}

	return toDeliveriesDomain(deliveryModels), nil
}

// UpdateDelivery saves the outcome of a publish attempt. Rows are keyed by
// (report_id, channel) because IDs of rows skipped on insert are unknown.
func (repo *deliveryRepository) UpdateDelivery(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("report_id = ? AND channel = ?", delivery.ReportID, delivery.Channel).
		Updates(map[string]any{
			"status":       string(delivery.Status),
			"attempts":     delivery.Attempts,
			"last_error":   delivery.LastError,
			"delivered_at": delivery.DeliveredAt,
			"updated_at":   delivery.UpdatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidInput.WrapMessage("invalid delivery status " + string(delivery.Status))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery")
	}
	if result.RowsAffected == 0 {
		return errors.Errorf("delivery %d/%s not found", delivery.ReportID, delivery.Channel)
	}

	return nil
}

// FindRetryableDeliveries returns unfinished rows of visible reports that are
// due for another attempt, oldest first.
func (repo *deliveryRepository) FindRetryableDeliveries(ctx context.Context, maxAttempts int, before time.Time) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Select("report_deliveries.*").
		Joins("JOIN reports ON reports.id = report_deliveries.report_id").
		Where("reports.hidden = ?", false).
		Where("report_deliveries.status IN ?", []string{
			string(entity.DeliveryStatusPending),
			string(entity.DeliveryStatusFailed),
		}).
		Where("report_deliveries.attempts < ?", maxAttempts).
		Where("report_deliveries.updated_at < ?", before).
		Order("report_deliveries.updated_at ASC, report_deliveries.id ASC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find retryable deliveries")
	}

	return toDeliveriesDomain(deliveryModels), nil
}

func toDeliveriesDomain(deliveryModels []*model.DeliveryModel) []*entity.Delivery {
	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries
}

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:          data.ID,
		ReportID:    data.ReportID,
		Channel:     data.Channel,
		Status:      entity.DeliveryStatus(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		DeliveredAt: data.DeliveredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:          data.ID,
		ReportID:    data.ReportID,
		Channel:     data.Channel,
		Status:      string(data.Status),
		Attempts:    data.Attempts,
		LastError:   data.LastError,
		DeliveredAt: data.DeliveredAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
