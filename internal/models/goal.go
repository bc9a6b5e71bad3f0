package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal represents a savings goal
type Goal struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_goals_user" json:"user_id"`
	FamilyID      *uuid.UUID `gorm:"type:uuid;index" json:"family_id,omitempty"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null;default:0" json:"target_amount"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	Status        string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"` // active, completed, abandoned
	TargetDate    *time.Time `json:"target_date,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Goal) TableName() string {
	return "goals"
}

// BeforeCreate sets UUID before creating
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
