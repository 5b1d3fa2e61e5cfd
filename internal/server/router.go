package server

import "github.com/gofiber/fiber/v2"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Webhook *WebhookHandler
	Health  *HealthHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Post("/", cfg.Webhook.Receive)
	app.Get("/health", cfg.Health.Live)
}
