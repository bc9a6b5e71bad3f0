package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a single income or expense entry
type Transaction struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_transactions_user" json:"user_id"`
	FamilyID        *uuid.UUID `gorm:"type:uuid;index:idx_transactions_family" json:"family_id,omitempty"`
	Amount          float64    `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	Type            string     `gorm:"type:varchar(20);not null" json:"type"` // income or expense
	Category        string     `gorm:"type:varchar(100)" json:"category,omitempty"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	TransactionDate time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_transactions_date" json:"transaction_date"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate sets UUID before creating
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
