package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/budgetme/admin-analytics-be/internal/core/audit"
)

type ActivityHandler struct {
	auditService *audit.Service
}

func NewActivityHandler(auditService *audit.Service) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// ListActivity godoc
// @Summary Recent platform activity
// @Description Paginated activity trail, newest first, with optional filters
// @Tags Activity
// @Produce json
// @Param type query string false "Filter by activity type"
// @Param severity query string false "Filter by severity" Enums(info, warning, error)
// @Param user_id query string false "Filter by user ID"
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} audit.ActivityPage
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/activity [get]
func (h *ActivityHandler) ListActivity(c *fiber.Ctx) error {
	filter := audit.ActivityFilter{
		ActivityType: c.Query("type"),
		Severity:     c.Query("severity"),
		Page:         1,
		PageSize:     50,
	}

	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid user ID",
			})
		}
		filter.UserID = &userID
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid start_date, expected RFC3339",
			})
		}
		filter.StartDate = &start
	}

	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid end_date, expected RFC3339",
			})
		}
		filter.EndDate = &end
	}

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := c.Query("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			filter.PageSize = size
		}
	}

	page, err := h.auditService.Recent(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list activity",
		})
	}
	return c.JSON(page)
}

// GetUserActivity godoc
// @Summary One user's recent activity
// @Description Latest activity entries recorded for one user
// @Tags Activity
// @Produce json
// @Param user_id path string true "User ID"
// @Param limit query int false "Maximum entries" default(100)
// @Success 200 {array} models.ActivityLog
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/activity/{user_id} [get]
func (h *ActivityHandler) GetUserActivity(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.auditService.UserActivity(c.Context(), userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get user activity",
		})
	}
	return c.JSON(entries)
}
