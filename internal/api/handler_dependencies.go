package api

import (
	"context"

	"github.com/rowanvale/tally/internal/db"
	"github.com/rowanvale/tally/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.logService = services.NewLogService(handler.repositories.DayLogs, handler.location)
	handler.statsService = services.NewStatsService(handler.repositories.DayLogs, handler.location)
	handler.exportService = services.NewExportService(handler.repositories.DayLogs)
	handler.limiter = newRequestLimiter()
	return handler
}

// StartLimiterSweep runs the limiter's periodic prune until ctx is done.
func (handler *Handler) StartLimiterSweep(ctx context.Context) {
	go handler.limiter.sweep(ctx)
}
