package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanvale/tally/internal/models"
	"github.com/rowanvale/tally/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// logServiceError maps service sentinels to client statuses; anything else
// is a server fault. Client errors must not be retried by callers.
func logServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidDateFormat):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrFutureDate):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrDateTooOld):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotesTooLong):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrLogNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}
