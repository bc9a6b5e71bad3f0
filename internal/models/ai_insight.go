package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AIInsight represents one AI-generated financial insight stored for a user
type AIInsight struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_ai_insights_user" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    string    `gorm:"type:varchar(50);not null;default:'trend'" json:"category"` // trend, risk, opportunity, goal
	Confidence  float64   `gorm:"type:float;not null;default:0" json:"confidence"`           // 0..1
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_ai_insights_created" json:"created_at"`
}

// TableName specifies the table name
func (AIInsight) TableName() string {
	return "ai_insights"
}

// BeforeCreate sets UUID before creating
func (i *AIInsight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
