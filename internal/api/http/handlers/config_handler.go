package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/dto"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/service"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// ConfigHandler serves the triage settings endpoints. Admin only.
type ConfigHandler struct {
	settings *service.SettingsService
}

// NewConfigHandler constructs the handler.
func NewConfigHandler(settings *service.SettingsService) *ConfigHandler {
	return &ConfigHandler{settings: settings}
}

// Get returns the current triage settings.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settings.Get(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.ToSettingsResponse(settings))
}

// Update applies a partial settings change.
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var req dto.SettingsPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if req.ConfidenceThreshold != nil {
		if *req.ConfidenceThreshold < 0 || *req.ConfidenceThreshold > 1 {
			return apperrors.NewValidationError("confidence_threshold must be between 0 and 1", map[string]any{
				"confidence_threshold": *req.ConfidenceThreshold,
			})
		}
	}

	settings, err := h.settings.Update(c.Context(), domain.SettingsPatch{
		AutoCloseEnabled:    req.AutoCloseEnabled,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ToSettingsResponse(settings))
}
