package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/budgetme/admin-analytics-be/internal/config"
	"github.com/budgetme/admin-analytics-be/internal/core/audit"
	"github.com/budgetme/admin-analytics-be/internal/core/export"
	"github.com/budgetme/admin-analytics-be/internal/core/insights"
	"github.com/budgetme/admin-analytics-be/internal/core/jobs"
	"github.com/budgetme/admin-analytics-be/internal/database"
	"github.com/budgetme/admin-analytics-be/internal/handlers"
	"github.com/budgetme/admin-analytics-be/internal/repositories"
	"github.com/budgetme/admin-analytics-be/internal/services"
	"github.com/budgetme/admin-analytics-be/internal/shared/utils"

	_ "github.com/budgetme/admin-analytics-be/docs"
)

// @title BudgetMe Admin Analytics API
// @version 1.0
// @description Aggregated reporting and chart configuration API for the BudgetMe admin dashboard
// @contact.name API Support
// @contact.email support@budgetme.app
// @license.name MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting admin-analytics-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	metricsRepo := repositories.NewMetricsRepo(db.GORM)
	usageRepo := repositories.NewUsageRepo(db.GORM, cfg.MaxPredictionsPerMonth)

	// Init services
	reportService := services.NewReportService(metricsRepo)
	insightService := insights.NewService(cfg.OpenAIKey, cfg.OpenAIModel)
	exportService := export.NewService()
	auditService := audit.NewService(db.GORM)

	if cfg.OpenAIKey == "" {
		log.Printf("⚠️  OPENAI_API_KEY not set, insights fall back to templated summaries")
	}

	// Init snapshot scheduler and warm the cache
	scheduler := jobs.NewScheduler(reportService, usageRepo, auditService)
	if err := scheduler.Start(jobs.Config{
		SnapshotCron:     cfg.SnapshotCron,
		UsageCleanupCron: cfg.UsageCleanupCron,
	}); err != nil {
		log.Fatalf("❌ Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()
	go scheduler.RefreshSnapshots()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(db)
	reportsHandler := handlers.NewReportsHandler(reportService, scheduler, insightService, exportService)
	usageHandler := handlers.NewUsageHandler(usageRepo)
	activityHandler := handlers.NewActivityHandler(auditService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "BudgetMe Admin Analytics API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Admin routes, every request lands on the activity trail
	admin := app.Group("/api/v1/admin", audit.Middleware(auditService))

	// Report routes
	admin.Get("/reports", reportsHandler.ListCategories)
	admin.Get("/reports/:category", reportsHandler.GetReport)
	admin.Get("/reports/:category/export", reportsHandler.ExportReport)
	admin.Get("/reports/:category/insights", reportsHandler.GetInsight)

	// Prediction usage routes
	admin.Get("/usage/statistics", usageHandler.GetStatistics)
	admin.Post("/usage/cleanup", usageHandler.Cleanup)
	admin.Get("/usage/:user_id", usageHandler.GetUserStatus)
	admin.Post("/usage/:user_id/reset", usageHandler.ResetUser)

	// Activity trail routes
	admin.Get("/activity", activityHandler.ListActivity)
	admin.Get("/activity/:user_id", activityHandler.GetUserActivity)

	log.Printf("✅ admin-analytics-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
