package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/budgetme/admin-analytics-be/internal/models"
	"github.com/budgetme/admin-analytics-be/internal/shared/utils"
)

// Severity levels for recorded activity
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Service records and queries the activity trail that feeds the
// system-activity report
type Service struct {
	db *gorm.DB
}

// NewService creates a new audit service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Record stores one activity entry
func (s *Service) Record(ctx context.Context, entry *models.ActivityLog) error {
	if entry.Severity == "" {
		entry.Severity = SeverityInfo
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// RecordAction stores an activity entry with structured metadata
func (s *Service) RecordAction(ctx context.Context, userID *uuid.UUID, activityType, description string, metadata map[string]interface{}) error {
	var meta datatypes.JSON
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			utils.LogWarn("failed to serialize activity metadata", map[string]interface{}{
				"activity_type": activityType,
				"error":         err.Error(),
			})
		} else {
			meta = datatypes.JSON(raw)
		}
	}

	return s.Record(ctx, &models.ActivityLog{
		UserID:       userID,
		ActivityType: activityType,
		Description:  description,
		Severity:     SeverityInfo,
		Metadata:     meta,
	})
}

// ActivityFilter narrows activity trail queries
type ActivityFilter struct {
	UserID       *uuid.UUID
	ActivityType string
	Severity     string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}

// ActivityPage is one page of the activity trail
type ActivityPage struct {
	Entries    []models.ActivityLog `json:"entries"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// Recent retrieves activity entries with filtering and pagination,
// newest first
func (s *Service) Recent(ctx context.Context, filter ActivityFilter) (*ActivityPage, error) {
	query := s.db.WithContext(ctx).Model(&models.ActivityLog{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ActivityType != "" {
		query = query.Where("activity_type = ?", filter.ActivityType)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count activity entries: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	offset := (filter.Page - 1) * filter.PageSize

	var entries []models.ActivityLog
	if err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get activity entries: %w", err)
	}

	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	return &ActivityPage{
		Entries:    entries,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// UserActivity retrieves the latest entries for one user
func (s *Service) UserActivity(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	if limit < 1 {
		limit = 100
	}

	var entries []models.ActivityLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user activity: %w", err)
	}

	return entries, nil
}

// DeleteOldEntries removes activity entries older than the retention
// window, keeping the activity_logs table bounded
func (s *Service) DeleteOldEntries(ctx context.Context, daysToKeep int) (int64, error) {
	if daysToKeep < 1 {
		return 0, fmt.Errorf("daysToKeep must be at least 1")
	}

	cutoff := time.Now().AddDate(0, 0, -daysToKeep)

	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old activity entries: %w", result.Error)
	}

	utils.LogInfo("pruned activity trail", map[string]interface{}{
		"deleted":      result.RowsAffected,
		"days_to_keep": daysToKeep,
	})
	return result.RowsAffected, nil
}
