package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

// stubSource returns canned payloads and optionally blocks until released
type stubSource struct {
	mu      sync.Mutex
	calls   int
	err     error
	block   chan struct{}
	entries []reports.SystemActivityEntry
}

func (s *stubSource) FetchMetrics(c reports.Category, tf reports.Timeframe) (reports.RawMetrics, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if s.err != nil {
		return reports.RawMetrics{}, s.err
	}
	return reports.RawMetrics{SystemActivity: s.entries}, nil
}

func sampleEntries() []reports.SystemActivityEntry {
	return []reports.SystemActivityEntry{
		{ActivityType: "login", Count: 5, ActivityDate: "2026-08-27"},
		{ActivityType: "report_viewed", Count: 2, ActivityDate: "2026-08-28"},
	}
}

func TestGenerateTableFormatSkipsChart(t *testing.T) {
	svc := NewReportService(&stubSource{entries: sampleEntries()})

	report, err := svc.Generate(Selection{
		Category:   reports.CategorySystemActivity,
		Timeframe:  reports.Timeframe30d,
		ChartForm:  reports.ChartFormPie,
		ViewFormat: ViewFormatTable,
	})
	require.NoError(t, err)

	assert.Nil(t, report.Chart)
	assert.Len(t, report.Data.TableData, 2)
}

func TestGenerateChartFormat(t *testing.T) {
	svc := NewReportService(&stubSource{entries: sampleEntries()})

	report, err := svc.Generate(Selection{
		Category:   reports.CategorySystemActivity,
		Timeframe:  reports.Timeframe7d,
		ChartForm:  reports.ChartFormLine,
		ViewFormat: ViewFormatChart,
	})
	require.NoError(t, err)

	require.NotNil(t, report.Chart)
	assert.Equal(t, "line", report.Chart.Chart.Type)
}

func TestOrchestratorStateMachine(t *testing.T) {
	src := &stubSource{entries: sampleEntries()}
	orch := NewOrchestrator(NewReportService(src), Selection{
		Category: reports.CategorySystemActivity,
	})

	assert.Equal(t, StateIdle, orch.State())
	assert.Nil(t, orch.Current())

	report, err := orch.Refresh()
	require.NoError(t, err)
	assert.Equal(t, StateReady, orch.State())
	assert.Same(t, report, orch.Current())
}

func TestOrchestratorErrorThenRetry(t *testing.T) {
	src := &stubSource{err: errors.New("connection refused")}
	orch := NewOrchestrator(NewReportService(src), Selection{
		Category: reports.CategorySystemActivity,
	})

	_, err := orch.Refresh()
	require.Error(t, err)
	assert.Equal(t, StateError, orch.State())

	src.err = nil
	src.entries = sampleEntries()
	report, err := orch.Refresh()
	require.NoError(t, err)
	assert.Equal(t, StateReady, orch.State())
	assert.NotNil(t, report)
}

func TestOrchestratorDiscardsStaleRefresh(t *testing.T) {
	release := make(chan struct{})
	src := &stubSource{entries: sampleEntries(), block: release}
	orch := NewOrchestrator(NewReportService(src), Selection{
		Category: reports.CategorySystemActivity,
	})

	staleCh := make(chan *Report, 1)
	go func() {
		stale, _ := orch.Refresh() // stalls inside FetchMetrics
		staleCh <- stale
	}()

	// Wait for the first refresh to be in flight
	for {
		src.mu.Lock()
		started := src.calls == 1
		src.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// A newer refresh starts later but completes first
	src.mu.Lock()
	src.block = nil
	src.entries = []reports.SystemActivityEntry{{ActivityType: "logout", Count: 9, ActivityDate: "2026-08-28"}}
	src.mu.Unlock()

	fresh, err := orch.Refresh()
	require.NoError(t, err)
	require.Len(t, fresh.Data.TableData, 1)

	// Release the stale fetch; last-write-wins keeps the fresh result
	close(release)
	stale := <-staleCh

	assert.Same(t, fresh, orch.Current())
	assert.Same(t, fresh, stale)
	assert.Equal(t, StateReady, orch.State())
}

func TestOrchestratorSetChartFormRebuildsWithoutRefetch(t *testing.T) {
	src := &stubSource{entries: sampleEntries()}
	orch := NewOrchestrator(NewReportService(src), Selection{
		Category: reports.CategorySystemActivity,
	})

	_, err := orch.Refresh()
	require.NoError(t, err)

	src.mu.Lock()
	callsBefore := src.calls
	src.mu.Unlock()

	orch.SetChartForm(reports.ChartFormColumn)

	src.mu.Lock()
	assert.Equal(t, callsBefore, src.calls)
	src.mu.Unlock()

	current := orch.Current()
	require.NotNil(t, current)
	require.NotNil(t, current.Chart)
	assert.Equal(t, "column", current.Chart.Chart.Type)
}
