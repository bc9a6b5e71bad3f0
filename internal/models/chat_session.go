package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatSession represents one chatbot conversation with the finance assistant
type ChatSession struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_chat_sessions_user" json:"user_id"`
	SessionType string     `gorm:"type:varchar(50);not null;default:'general';index" json:"session_type"` // general, budgeting, goals, support
	Status      string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`        // active or closed
	Sentiment   string     `gorm:"type:varchar(20)" json:"sentiment,omitempty"`                           // positive, neutral, negative
	Rating      *float64   `gorm:"type:float" json:"rating,omitempty"`                                    // 1..5
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index:idx_chat_sessions_created" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// BeforeCreate sets UUID before creating
func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
