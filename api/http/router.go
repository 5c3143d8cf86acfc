package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/accounts/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, users *handlers.UserHandler, health *handlers.HealthHandler, authMW fiber.Handler, adminMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Post("/users", users.Register)
	v1.Post("/login", users.Login)

	// Listing is restricted to the admin identity.
	v1.Get("/users", authMW, adminMW, users.List)
}
