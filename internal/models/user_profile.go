package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfile mirrors the hosted-platform profile row for a registered user
type UserProfile struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName     string     `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Role         string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"` // user or admin
	FamilyID     *uuid.UUID `gorm:"type:uuid;index" json:"family_id,omitempty"`
	LastActiveAt *time.Time `gorm:"index" json:"last_active_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (UserProfile) TableName() string {
	return "user_profiles"
}

// BeforeCreate sets UUID before creating
func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
