package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents one recorded system/admin activity
type ActivityLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index:idx_activity_logs_user" json:"user_id,omitempty"`
	ActivityType string         `gorm:"type:varchar(100);not null;index:idx_activity_logs_type" json:"activity_type"` // login, transaction_created, report_viewed, ...
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Severity     string         `gorm:"type:varchar(20);not null;default:'info'" json:"severity"` // info, warning, error
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index:idx_activity_logs_created" json:"created_at"`
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate sets UUID before creating
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
