package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prediction represents one generated financial forecast
type Prediction struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_predictions_user" json:"user_id"`
	ServiceName     string         `gorm:"type:varchar(100);not null;default:'prophet';index" json:"service_name"` // prophet, prediction-api, insights-engine
	Timeframe       string         `gorm:"type:varchar(20);not null" json:"timeframe"`
	ConfidenceScore float64        `gorm:"type:float;not null;default:0" json:"confidence_score"` // 0..1
	Result          datatypes.JSON `gorm:"type:jsonb" json:"result,omitempty"`
	ExpiresAt       *time.Time     `gorm:"index" json:"expires_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index:idx_predictions_created" json:"created_at"`
}

// TableName specifies the table name
func (Prediction) TableName() string {
	return "predictions"
}

// BeforeCreate sets UUID before creating
func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
