package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/", h.HandleRoot)
	app.Get("/test", h.HandleTestDatabase)

	api := app.Group("/api")

	api.Post("/profile", h.HandleCreateProfile)
	api.Get("/profile", h.HandleGetProfiles)

	api.Post("/metrics", h.HandleCreateMetric)
	api.Get("/metrics", h.HandleListMetrics)

	api.Post("/predict", h.HandlePredict)

	api.Post("/reports", h.HandleCreateReport)
	api.Get("/reports", h.HandleListReports)
}
