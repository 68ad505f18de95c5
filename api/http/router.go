package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/foodiet/backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. The appKey
// middleware guards the two routes that mutate or read user data; the upload
// stub and the probes stay open.
func Register(app *fiber.App, appKey fiber.Handler, profiles *handlers.ProfileHandler, suggestions *handlers.SuggestionHandler, uploads *handlers.UploadHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")
	api.Post("/create_profile", appKey, profiles.Create)
	api.Post("/get_more_suggestions", appKey, suggestions.More)
	api.Post("/upload_image", uploads.Image)
}
