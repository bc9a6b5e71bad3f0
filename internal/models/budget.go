package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget represents a spending budget for a user or family
type Budget struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_budgets_user" json:"user_id"`
	FamilyID  *uuid.UUID `gorm:"type:uuid;index" json:"family_id,omitempty"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Category  string     `gorm:"type:varchar(100)" json:"category,omitempty"`
	Amount    float64    `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Spent     float64    `gorm:"type:decimal(15,2);not null;default:0" json:"spent"`
	Status    string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"` // active or archived
	PeriodEnd *time.Time `json:"period_end,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Budget) TableName() string {
	return "budgets"
}

// BeforeCreate sets UUID before creating
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
