package server

import "github.com/gofiber/fiber/v2"

// HealthHandler responds to liveness probes.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
	})
}
