package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionUsage tracks a user's monthly prediction quota
type PredictionUsage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_prediction_usage_user" json:"user_id"`
	UsageCount int       `gorm:"not null;default:0" json:"usage_count"`
	MaxUsage   int       `gorm:"not null;default:5" json:"max_usage"`
	ResetDate  time.Time `gorm:"not null;index" json:"reset_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (PredictionUsage) TableName() string {
	return "prediction_usage"
}

// BeforeCreate sets UUID before creating
func (u *PredictionUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
