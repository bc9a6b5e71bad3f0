package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/budgetme/admin-analytics-be/internal/core/export"
	"github.com/budgetme/admin-analytics-be/internal/core/insights"
	"github.com/budgetme/admin-analytics-be/internal/core/jobs"
	"github.com/budgetme/admin-analytics-be/internal/core/reports"
	"github.com/budgetme/admin-analytics-be/internal/services"
)

type ReportsHandler struct {
	reportService  *services.ReportService
	scheduler      *jobs.Scheduler
	insightService *insights.Service
	exportService  *export.Service
}

func NewReportsHandler(reportService *services.ReportService, scheduler *jobs.Scheduler, insightService *insights.Service, exportService *export.Service) *ReportsHandler {
	return &ReportsHandler{
		reportService:  reportService,
		scheduler:      scheduler,
		insightService: insightService,
		exportService:  exportService,
	}
}

// ListCategories godoc
// @Summary List report categories
// @Description List the available admin report categories with display metadata
// @Tags Reports
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /admin/reports [get]
func (h *ReportsHandler) ListCategories(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(reports.Categories))
	for _, category := range reports.Categories {
		meta := reports.MetaFor(category)
		out = append(out, fiber.Map{
			"category": category,
			"title":    meta.Title,
			"state":    h.scheduler.SnapshotState(category),
		})
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary Get an admin report
// @Description Generate the aggregated report for one category. Unknown timeframe and chart values fall back to defaults; unknown categories are rejected.
// @Tags Reports
// @Produce json
// @Param category path string true "Report category" Enums(system-activity, user-engagement, financial-health, aiml-analytics, chatbot-analytics)
// @Param timeframe query string false "Reporting window" Enums(7d, 30d, 90d, 1y) default(30d)
// @Param chart query string false "Chart form" Enums(pie, column, line, area) default(pie)
// @Param format query string false "View format" Enums(chart, table) default(chart)
// @Param fresh query boolean false "Bypass the snapshot cache"
// @Success 200 {object} services.Report
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/reports/{category} [get]
func (h *ReportsHandler) GetReport(c *fiber.Ctx) error {
	category, ok := reports.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown report category",
		})
	}

	sel := services.Selection{
		Category:   category,
		Timeframe:  reports.ParseTimeframe(c.Query("timeframe")),
		ChartForm:  reports.ParseChartForm(c.Query("chart")),
		ViewFormat: services.ViewFormatChart,
	}
	if c.Query("format") == string(services.ViewFormatTable) {
		sel.ViewFormat = services.ViewFormatTable
	}

	// The snapshot cache only holds the default selection; anything else
	// is computed on demand.
	if c.Query("fresh") != "true" && sel.Timeframe == reports.Timeframe30d {
		if snap := h.scheduler.Snapshot(category); snap != nil {
			return c.JSON(h.withChartForm(snap, sel))
		}
	}

	report, err := h.reportService.Generate(sel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}

	return c.JSON(report)
}

// ExportReport godoc
// @Summary Export an admin report
// @Description Render the report as a downloadable PDF or Excel file
// @Tags Reports
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category path string true "Report category"
// @Param timeframe query string false "Reporting window" default(30d)
// @Param format query string false "File format" Enums(pdf, excel, xlsx) default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/reports/{category}/export [get]
func (h *ReportsHandler) ExportReport(c *fiber.Ctx) error {
	category, ok := reports.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown report category",
		})
	}

	format := export.FormatPDF
	if raw := c.Query("format"); raw != "" {
		parsed, ok := export.ParseFormat(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown export format",
			})
		}
		format = parsed
	}

	sel := services.Selection{
		Category:   category,
		Timeframe:  reports.ParseTimeframe(c.Query("timeframe")),
		ViewFormat: services.ViewFormatTable,
	}
	report, err := h.reportService.Generate(sel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}

	doc := export.FromReport(category, sel.Timeframe, report.Data)
	payload, contentType, err := h.exportService.Export(doc, format)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export report",
		})
	}

	filename := h.exportService.Filename(string(category), string(sel.Timeframe), format, time.Now())
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}

// GetInsight godoc
// @Summary Get an AI insight for a report
// @Description Summarize the report's headline stats into a short narrative insight
// @Tags Reports
// @Produce json
// @Param category path string true "Report category"
// @Param timeframe query string false "Reporting window" default(30d)
// @Success 200 {object} insights.Insight
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/reports/{category}/insights [get]
func (h *ReportsHandler) GetInsight(c *fiber.Ctx) error {
	category, ok := reports.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown report category",
		})
	}

	sel := services.Selection{
		Category:   category,
		Timeframe:  reports.ParseTimeframe(c.Query("timeframe")),
		ViewFormat: services.ViewFormatTable,
	}
	report, err := h.reportService.Generate(sel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate report",
		})
	}

	insight, err := h.insightService.SummarizeReport(c.Context(), category, report.Data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate insight",
		})
	}

	return c.JSON(insight)
}

// withChartForm adapts a cached snapshot to the requested chart form and
// view format without refetching
func (h *ReportsHandler) withChartForm(snap *services.Report, sel services.Selection) *services.Report {
	out := *snap
	out.ChartForm = sel.ChartForm
	if sel.ViewFormat == services.ViewFormatChart {
		out.Chart = reports.BuildChartConfig(out.Category, sel.ChartForm, out.Data.ChartData)
	} else {
		out.Chart = nil
	}
	return &out
}
