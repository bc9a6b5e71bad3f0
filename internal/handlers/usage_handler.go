package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/budgetme/admin-analytics-be/internal/repositories"
)

type UsageHandler struct {
	usageRepo repositories.UsageRepo
}

func NewUsageHandler(usageRepo repositories.UsageRepo) *UsageHandler {
	return &UsageHandler{usageRepo: usageRepo}
}

// GetStatistics godoc
// @Summary Prediction usage statistics
// @Description Platform-wide prediction quota usage totals
// @Tags Usage
// @Produce json
// @Success 200 {object} repositories.UsageStatistics
// @Failure 500 {object} map[string]interface{}
// @Router /admin/usage/statistics [get]
func (h *UsageHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.usageRepo.Statistics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get usage statistics",
		})
	}
	return c.JSON(stats)
}

// GetUserStatus godoc
// @Summary One user's prediction quota
// @Description Current quota usage for one user, initializing the record if needed
// @Tags Usage
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} repositories.UsageStatus
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/usage/{user_id} [get]
func (h *UsageHandler) GetUserStatus(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	status, err := h.usageRepo.GetStatus(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get usage status",
		})
	}
	return c.JSON(status)
}

// ResetUser godoc
// @Summary Reset a user's prediction quota
// @Description Zero the usage counter and restart the 30 day window
// @Tags Usage
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} repositories.UsageStatus
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/usage/{user_id}/reset [post]
func (h *UsageHandler) ResetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	status, err := h.usageRepo.Reset(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset usage",
		})
	}
	return c.JSON(status)
}

// Cleanup godoc
// @Summary Roll over expired quotas
// @Description Reset every usage record whose window has passed
// @Tags Usage
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /admin/usage/cleanup [post]
func (h *UsageHandler) Cleanup(c *fiber.Ctx) error {
	rolled, err := h.usageRepo.CleanupExpired()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clean up usage records",
		})
	}
	return c.JSON(fiber.Map{
		"rolled_over": rolled,
	})
}
