package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	start := time.Now()
	if err := handler.db.Exec("SELECT 1").Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"checks": fiber.Map{
				"database": fiber.Map{"status": "unhealthy"},
			},
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"checks": fiber.Map{
			"database": fiber.Map{
				"status":     "healthy",
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
