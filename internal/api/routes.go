package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.ReadLimit, handler.GetLogs)
	logs.Get("/today", handler.ReadLimit, handler.GetTodayStatus)
	logs.Post("", handler.MutationLimit, handler.LogDay)
	logs.Delete("/:id", handler.MutationLimit, handler.DeleteLog)
	logs.Post("/:id/restore", handler.MutationLimit, handler.RestoreLog)

	stats := api.Group("/stats", handler.AuthRequired, handler.ReadLimit)
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/trend", handler.GetTrendSeries)

	export := api.Group("/export", handler.AuthRequired, handler.ReadLimit)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
