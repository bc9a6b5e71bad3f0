package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetme/admin-analytics-be/internal/models"
)

// UsageStatus describes a user's current prediction quota
type UsageStatus struct {
	UserID       uuid.UUID `json:"user_id"`
	CurrentUsage int       `json:"current_usage"`
	MaxUsage     int       `json:"max_usage"`
	ResetDate    time.Time `json:"reset_date"`
	Exceeded     bool      `json:"exceeded"`
	Remaining    int       `json:"remaining"`
}

// UsageStatistics summarizes quota usage across all users
type UsageStatistics struct {
	TrackedUsers    int64   `json:"tracked_users"`
	TotalUsage      int64   `json:"total_usage"`
	UsersAtLimit    int64   `json:"users_at_limit"`
	AvgUsagePerUser float64 `json:"avg_usage_per_user"`
	ExpiredRecords  int64   `json:"expired_records"`
}

// UsageRepo manages per-user monthly prediction quotas
type UsageRepo interface {
	GetStatus(userID uuid.UUID) (*UsageStatus, error)
	Increment(userID uuid.UUID, by int) (*UsageStatus, error)
	Reset(userID uuid.UUID) (*UsageStatus, error)
	CleanupExpired() (int64, error)
	Statistics() (*UsageStatistics, error)
}

type usageRepo struct {
	db       *gorm.DB
	maxUsage int
}

// NewUsageRepo creates a new usage repository
func NewUsageRepo(db *gorm.DB, maxUsage int) UsageRepo {
	if maxUsage <= 0 {
		maxUsage = 5
	}
	return &usageRepo{db: db, maxUsage: maxUsage}
}

// GetStatus returns the user's quota, initializing a record for new users and
// rolling the counter over once the reset date has passed
func (r *usageRepo) GetStatus(userID uuid.UUID) (*UsageStatus, error) {
	var usage models.PredictionUsage
	err := r.db.Where("user_id = ?", userID).First(&usage).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		usage = models.PredictionUsage{
			UserID:     userID,
			UsageCount: 0,
			MaxUsage:   r.maxUsage,
			ResetDate:  time.Now().AddDate(0, 0, 30),
		}
		if err := r.db.Create(&usage).Error; err != nil {
			return nil, fmt.Errorf("failed to initialize usage record: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load usage record: %w", err)
	}

	// Monthly rollover
	if time.Now().After(usage.ResetDate) {
		usage.UsageCount = 0
		usage.ResetDate = time.Now().AddDate(0, 0, 30)
		if err := r.db.Save(&usage).Error; err != nil {
			return nil, fmt.Errorf("failed to reset usage record: %w", err)
		}
	}

	return r.toStatus(&usage), nil
}

// Increment adds to the user's usage count. At the cap the count is left
// unchanged and the current status is returned.
func (r *usageRepo) Increment(userID uuid.UUID, by int) (*UsageStatus, error) {
	if by <= 0 {
		by = 1
	}

	status, err := r.GetStatus(userID)
	if err != nil {
		return nil, err
	}

	newUsage := status.CurrentUsage + by
	if newUsage > status.MaxUsage {
		return status, nil
	}

	result := r.db.Model(&models.PredictionUsage{}).
		Where("user_id = ?", userID).
		Update("usage_count", newUsage)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to increment usage: %w", result.Error)
	}

	status.CurrentUsage = newUsage
	status.Exceeded = newUsage >= status.MaxUsage
	status.Remaining = status.MaxUsage - newUsage
	return status, nil
}

// Reset zeroes the user's counter and pushes the reset date a month out
func (r *usageRepo) Reset(userID uuid.UUID) (*UsageStatus, error) {
	resetDate := time.Now().AddDate(0, 0, 30)
	result := r.db.Model(&models.PredictionUsage{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"usage_count": 0,
			"reset_date":  resetDate,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to reset usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("no usage record for user %s", userID)
	}

	return r.GetStatus(userID)
}

// CleanupExpired rolls over every record whose reset date has passed and
// returns the number of records updated
func (r *usageRepo) CleanupExpired() (int64, error) {
	now := time.Now()
	result := r.db.Model(&models.PredictionUsage{}).
		Where("reset_date < ?", now).
		Updates(map[string]interface{}{
			"usage_count": 0,
			"reset_date":  now.AddDate(0, 0, 30),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired usage records: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// Statistics aggregates quota usage across all tracked users
func (r *usageRepo) Statistics() (*UsageStatistics, error) {
	var stats UsageStatistics

	if err := r.db.Model(&models.PredictionUsage{}).Count(&stats.TrackedUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count usage records: %w", err)
	}

	row := r.db.Model(&models.PredictionUsage{}).
		Select("COALESCE(SUM(usage_count), 0)").
		Row()
	if err := row.Scan(&stats.TotalUsage); err != nil {
		return nil, fmt.Errorf("failed to sum usage counts: %w", err)
	}

	if err := r.db.Model(&models.PredictionUsage{}).
		Where("usage_count >= max_usage").
		Count(&stats.UsersAtLimit).Error; err != nil {
		return nil, fmt.Errorf("failed to count users at limit: %w", err)
	}

	if err := r.db.Model(&models.PredictionUsage{}).
		Where("reset_date < ?", time.Now()).
		Count(&stats.ExpiredRecords).Error; err != nil {
		return nil, fmt.Errorf("failed to count expired records: %w", err)
	}

	if stats.TrackedUsers > 0 {
		stats.AvgUsagePerUser = float64(stats.TotalUsage) / float64(stats.TrackedUsers)
	}

	return &stats, nil
}

func (r *usageRepo) toStatus(usage *models.PredictionUsage) *UsageStatus {
	remaining := usage.MaxUsage - usage.UsageCount
	if remaining < 0 {
		remaining = 0
	}
	return &UsageStatus{
		UserID:       usage.UserID,
		CurrentUsage: usage.UsageCount,
		MaxUsage:     usage.MaxUsage,
		ResetDate:    usage.ResetDate,
		Exceeded:     usage.UsageCount >= usage.MaxUsage,
		Remaining:    remaining,
	}
}
