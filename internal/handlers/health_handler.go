package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/budgetme/admin-analytics-be/internal/database"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if the API and its database are alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	if err := h.db.PingContext(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "degraded",
			"service": "admin-analytics-api",
			"error":   "database unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "admin-analytics-api",
	})
}
