package model

import (
	"time"
)

// DeliveryModel is the GORM-specific struct for the 'report_deliveries' table.
// One row per (report, channel).
type DeliveryModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	ReportID    int64      `gorm:"not null;uniqueIndex:idx_deliveries_report_channel,priority:1"`
	Channel     string     `gorm:"type:varchar(32);not null;uniqueIndex:idx_deliveries_report_channel,priority:2"`
	Status      string     `gorm:"type:varchar(16);not null;default:pending;index;check:chk_deliveries_status,status IN ('pending','delivered','failed')"`
	Attempts    int        `gorm:"not null;default:0"`
	LastError   string     `gorm:"type:text;not null;default:''"`
	DeliveredAt *time.Time `gorm:"default:null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time `gorm:"index"`

	Report *ReportModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "report_deliveries"
}

// AllModels lists the tables AutoMigrate manages, parents first.
func AllModels() []any {
	return []any{
		&ReportModel{},
		&DeliveryModel{},
	}
}
