package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/budgetme/admin-analytics-be/internal/core/audit"
	"github.com/budgetme/admin-analytics-be/internal/core/reports"
	"github.com/budgetme/admin-analytics-be/internal/repositories"
	"github.com/budgetme/admin-analytics-be/internal/services"
)

// Activity entries older than this are pruned by the nightly job
const activityRetentionDays = 90

// Scheduler runs the periodic background work: refreshing the report
// snapshot cache, rolling over expired prediction quotas, and pruning
// the activity trail.
type Scheduler struct {
	cron *cron.Cron

	snapMux   sync.RWMutex
	snapshots map[reports.Category]*services.Orchestrator

	usage    repositories.UsageRepo
	activity *audit.Service
}

// Config carries the cron expressions for the scheduled jobs.
// Expressions include a seconds field.
type Config struct {
	SnapshotCron     string
	UsageCleanupCron string
}

// NewScheduler creates a scheduler with one orchestrator per report
// category. Snapshots default to the 30d timeframe with pie charts.
func NewScheduler(svc *services.ReportService, usage repositories.UsageRepo, activity *audit.Service) *Scheduler {
	snapshots := make(map[reports.Category]*services.Orchestrator, len(reports.Categories))
	for _, category := range reports.Categories {
		snapshots[category] = services.NewOrchestrator(svc, services.Selection{
			Category: category,
		})
	}

	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		snapshots: snapshots,
		usage:     usage,
		activity:  activity,
	}
}

// Start registers the cron jobs and starts the scheduler
func (s *Scheduler) Start(cfg Config) error {
	if _, err := s.cron.AddFunc(cfg.SnapshotCron, s.RefreshSnapshots); err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh: %w", err)
	}
	if _, err := s.cron.AddFunc(cfg.UsageCleanupCron, s.runMaintenance); err != nil {
		return fmt.Errorf("failed to schedule maintenance: %w", err)
	}

	log.Println("⏰ Starting report scheduler...")
	s.cron.Start()
	log.Println("✅ Report scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	log.Println("⏰ Stopping report scheduler...")
	s.cron.Stop()
	log.Println("✅ Report scheduler stopped")
}

// RefreshSnapshots recomputes every category snapshot. Also called once
// at startup to warm the cache.
func (s *Scheduler) RefreshSnapshots() {
	s.snapMux.RLock()
	defer s.snapMux.RUnlock()

	for category, orch := range s.snapshots {
		if _, err := orch.Refresh(); err != nil {
			log.Printf("⚠️ Snapshot refresh failed for %s: %v", category, err)
		}
	}
}

// Snapshot returns the cached report for a category, or nil when the
// category has not been refreshed successfully yet
func (s *Scheduler) Snapshot(category reports.Category) *services.Report {
	s.snapMux.RLock()
	defer s.snapMux.RUnlock()

	orch, ok := s.snapshots[category]
	if !ok {
		return nil
	}
	return orch.Current()
}

// SnapshotState reports the lifecycle state of one category snapshot
func (s *Scheduler) SnapshotState(category reports.Category) services.OrchestratorState {
	s.snapMux.RLock()
	defer s.snapMux.RUnlock()

	orch, ok := s.snapshots[category]
	if !ok {
		return services.StateIdle
	}
	return orch.State()
}

func (s *Scheduler) runMaintenance() {
	rolled, err := s.usage.CleanupExpired()
	if err != nil {
		log.Printf("⚠️ Usage quota rollover failed: %v", err)
	} else if rolled > 0 {
		log.Printf("✅ Rolled over %d expired prediction quotas", rolled)
	}

	if _, err := s.activity.DeleteOldEntries(context.Background(), activityRetentionDays); err != nil {
		log.Printf("⚠️ Activity trail pruning failed: %v", err)
	}
}
