package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

// MetricsSource supplies the raw payload for one category and timeframe.
// Implemented by repositories.MetricsRepo; tests substitute a stub.
type MetricsSource interface {
	FetchMetrics(category reports.Category, timeframe reports.Timeframe) (reports.RawMetrics, error)
}

// ViewFormat selects between tabular and chart presentation
type ViewFormat string

const (
	ViewFormatTable ViewFormat = "table"
	ViewFormatChart ViewFormat = "chart"
)

// Selection is the admin's current report view choice
type Selection struct {
	Category   reports.Category  `json:"category"`
	Timeframe  reports.Timeframe `json:"timeframe"`
	ChartForm  reports.ChartForm `json:"chart_form"`
	ViewFormat ViewFormat        `json:"view_format"`
}

// Report is one fully processed report ready for rendering
type Report struct {
	Category    reports.Category            `json:"category"`
	Timeframe   reports.Timeframe           `json:"timeframe"`
	ChartForm   reports.ChartForm           `json:"chart_form"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Data        reports.ProcessedReportData `json:"data"`
	Chart       *reports.ChartConfig        `json:"chart,omitempty"`
}

// ReportService runs the fetch -> aggregate -> chart pipeline
type ReportService struct {
	source MetricsSource
}

// NewReportService creates a new report service
func NewReportService(source MetricsSource) *ReportService {
	return &ReportService{source: source}
}

// Generate produces a report for the given selection. Aggregation is
// synchronous and atomic once the raw payload is in hand.
func (s *ReportService) Generate(sel Selection) (*Report, error) {
	raw, err := s.source.FetchMetrics(sel.Category, sel.Timeframe)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics for %s: %w", sel.Category, err)
	}

	data := reports.Aggregate(sel.Category, raw)

	report := &Report{
		Category:    sel.Category,
		Timeframe:   sel.Timeframe,
		ChartForm:   sel.ChartForm,
		GeneratedAt: time.Now(),
		Data:        data,
	}
	if sel.ViewFormat == ViewFormatChart {
		report.Chart = reports.BuildChartConfig(sel.Category, sel.ChartForm, data.ChartData)
	}

	return report, nil
}

// OrchestratorState is the report orchestration lifecycle state
type OrchestratorState string

const (
	StateIdle    OrchestratorState = "idle"
	StateLoading OrchestratorState = "loading"
	StateReady   OrchestratorState = "ready"
	StateError   OrchestratorState = "error"
)

// Orchestrator holds one report view's selection state and recomputes it on
// refresh triggers. Stale fetches are discarded last-write-wins: only the
// most recently started refresh may publish its result.
type Orchestrator struct {
	svc *ReportService

	mu      sync.Mutex
	sel     Selection
	state   OrchestratorState
	gen     uint64
	current *Report
	lastErr error
}

// NewOrchestrator creates an orchestrator in the idle state
func NewOrchestrator(svc *ReportService, sel Selection) *Orchestrator {
	if sel.Timeframe == "" {
		sel.Timeframe = reports.Timeframe30d
	}
	if sel.ChartForm == "" {
		sel.ChartForm = reports.ChartFormPie
	}
	if sel.ViewFormat == "" {
		sel.ViewFormat = ViewFormatChart
	}
	return &Orchestrator{
		svc:   svc,
		sel:   sel,
		state: StateIdle,
	}
}

// Refresh re-runs the pipeline for the current selection. Safe to call
// concurrently; a slower older refresh never overwrites a newer result.
func (o *Orchestrator) Refresh() (*Report, error) {
	o.mu.Lock()
	o.state = StateLoading
	o.gen++
	gen := o.gen
	sel := o.sel
	o.mu.Unlock()

	report, err := o.svc.Generate(sel)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		// A newer refresh started while this one was in flight.
		return o.current, o.lastErr
	}

	if err != nil {
		o.state = StateError
		o.lastErr = err
		return nil, err
	}

	o.state = StateReady
	o.lastErr = nil
	o.current = report
	return report, nil
}

// SetCategory switches the report category; the caller refreshes afterwards
func (o *Orchestrator) SetCategory(c reports.Category) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sel.Category = c
}

// SetTimeframe switches the timeframe; the caller refreshes afterwards
func (o *Orchestrator) SetTimeframe(tf reports.Timeframe) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sel.Timeframe = tf
}

// SetChartForm switches the visual form. No refetch is needed: the chart is
// rebuilt from the already aggregated data.
func (o *Orchestrator) SetChartForm(form reports.ChartForm) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.sel.ChartForm = form
	if o.state == StateReady && o.current != nil {
		rebuilt := *o.current
		rebuilt.ChartForm = form
		rebuilt.Chart = reports.BuildChartConfig(rebuilt.Category, form, rebuilt.Data.ChartData)
		o.current = &rebuilt
	}
}

// State returns the current lifecycle state
func (o *Orchestrator) State() OrchestratorState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Current returns the last published report, or nil before the first
// successful refresh
func (o *Orchestrator) Current() *Report {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Selection returns the current selection
func (o *Orchestrator) Selection() Selection {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sel
}
