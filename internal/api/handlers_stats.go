package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanvale/tally/internal/services"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.statsService.BuildOverview(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch stats")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetTrendSeries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := services.DefaultTrendWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTrendWindowDays {
			return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
		}
		windowDays = parsed
	}

	points, err := handler.statsService.BuildTrendSeries(user.ID, windowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch trend")
	}
	return c.JSON(fiber.Map{"points": points})
}
