package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/budgetme/admin-analytics-be/internal/models"
	"github.com/budgetme/admin-analytics-be/internal/shared/utils"
)

// Middleware records every completed admin API request on the activity
// trail. Recording happens after the handler so the status code is known,
// and failures never affect the response.
func Middleware(service *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		severity := SeverityInfo
		if status >= fiber.StatusInternalServerError {
			severity = SeverityError
		} else if status >= fiber.StatusBadRequest {
			severity = SeverityWarning
		}

		meta, _ := json.Marshal(map[string]interface{}{
			"method":      c.Method(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.IP(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		recordErr := service.Record(ctx, &models.ActivityLog{
			ActivityType: "admin_request",
			Description:  c.Method() + " " + c.Path(),
			Severity:     severity,
			Metadata:     datatypes.JSON(meta),
		})
		if recordErr != nil {
			utils.LogWarn("failed to record admin request", map[string]interface{}{
				"path":  c.Path(),
				"error": recordErr.Error(),
			})
		}

		return err
	}
}
