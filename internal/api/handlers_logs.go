package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanvale/tally/internal/services"
)

type logDayInput struct {
	Date    string `json:"date" form:"date"`
	Success *bool  `json:"success" form:"success"`
	Notes   string `json:"notes" form:"notes"`
}

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.logService.ListActive(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) GetTodayStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	hasLogged, todayLog, err := handler.logService.TodayStatus(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch today status")
	}
	return c.JSON(fiber.Map{
		"has_logged_today": hasLogged,
		"today_log":        todayLog,
	})
}

func (handler *Handler) LogDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := logDayInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if input.Success == nil {
		return apiError(c, fiber.StatusBadRequest, "success is required")
	}

	entry, action, err := handler.logService.LogDay(user.ID, input.Date, *input.Success, input.Notes)
	if err != nil {
		return logServiceError(c, err, "failed to save log")
	}

	status := fiber.StatusOK
	if action == services.ActionCreated {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"log": entry, "action": action})
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logID, err := parseLogID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	entry, err := handler.logService.DeleteLog(user.ID, logID)
	if err != nil {
		return logServiceError(c, err, "failed to delete log")
	}
	return c.JSON(fiber.Map{"log": entry, "action": services.ActionDeleted})
}

func (handler *Handler) RestoreLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logID, err := parseLogID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	entry, err := handler.logService.RestoreLog(user.ID, logID)
	if err != nil {
		return logServiceError(c, err, "failed to restore log")
	}
	return c.JSON(fiber.Map{"log": entry, "action": services.ActionRestored})
}

func parseLogID(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
