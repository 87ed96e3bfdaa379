// Package handlers holds the HTTP endpoint implementations.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/config"
)

// HealthHandler exposes liveness information.
type HealthHandler struct {
	cfg config.AppConfig
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(cfg config.AppConfig) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check reports service health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": h.cfg.Name,
		"version": h.cfg.Version,
	})
}
