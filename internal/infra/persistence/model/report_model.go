// Package model holds the GORM table structs of the persistence layer.
package model

import (
	"time"
)

// ReportModel is the GORM-specific struct for the 'reports' table.
type ReportModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Location       string    `gorm:"type:text;not null"`
	Description    string    `gorm:"type:text;not null"`
	Category       string    `gorm:"type:varchar(32);not null;default:general;index"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	LocationSource string    `gorm:"type:varchar(16);not null;default:default"`
	IsAnonymous    bool      `gorm:"not null"`
	Hidden         bool      `gorm:"not null;default:false;index:idx_reports_visible_created,priority:1"`
	CreatedAt      time.Time `gorm:"not null;index:idx_reports_visible_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
