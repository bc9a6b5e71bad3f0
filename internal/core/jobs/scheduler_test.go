package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
	"github.com/budgetme/admin-analytics-be/internal/services"
)

type stubSource struct {
	calls int
}

func (s *stubSource) FetchMetrics(category reports.Category, timeframe reports.Timeframe) (reports.RawMetrics, error) {
	s.calls++
	switch category {
	case reports.CategorySystemActivity:
		return reports.RawMetrics{
			SystemActivity: []reports.SystemActivityEntry{
				{ActivityType: "login", Count: 3, ActivityDate: "2026-08-20", Severity: "info"},
			},
		}, nil
	case reports.CategoryUserEngagement:
		return reports.RawMetrics{
			Engagement: &reports.UserEngagementSnapshot{TotalUsers: 10, ActiveUsersWeek: 4, ActiveUsersMonth: 7},
		}, nil
	default:
		return reports.RawMetrics{}, nil
	}
}

func TestSchedulerSnapshotEmptyBeforeRefresh(t *testing.T) {
	svc := services.NewReportService(&stubSource{})
	scheduler := NewScheduler(svc, nil, nil)

	assert.Nil(t, scheduler.Snapshot(reports.CategorySystemActivity))
	assert.Equal(t, services.StateIdle, scheduler.SnapshotState(reports.CategorySystemActivity))
}

func TestSchedulerRefreshSnapshots(t *testing.T) {
	source := &stubSource{}
	svc := services.NewReportService(source)
	scheduler := NewScheduler(svc, nil, nil)

	scheduler.RefreshSnapshots()

	assert.Equal(t, len(reports.Categories), source.calls)

	snap := scheduler.Snapshot(reports.CategorySystemActivity)
	require.NotNil(t, snap)
	assert.Equal(t, reports.CategorySystemActivity, snap.Category)
	assert.Equal(t, reports.Timeframe30d, snap.Timeframe)
	require.Len(t, snap.Data.ChartData, 1)
	assert.Equal(t, "Login", snap.Data.ChartData[0].Name)
	assert.Equal(t, services.StateReady, scheduler.SnapshotState(reports.CategorySystemActivity))
}

func TestSchedulerSnapshotUnknownCategory(t *testing.T) {
	svc := services.NewReportService(&stubSource{})
	scheduler := NewScheduler(svc, nil, nil)
	scheduler.RefreshSnapshots()

	assert.Nil(t, scheduler.Snapshot(reports.Category("bogus")))
	assert.Equal(t, services.StateIdle, scheduler.SnapshotState(reports.Category("bogus")))
}
