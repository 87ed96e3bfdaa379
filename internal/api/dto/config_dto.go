package dto

import (
	"time"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// SettingsPatchRequest partially updates triage settings. Omitted
// fields keep their current values.
type SettingsPatchRequest struct {
	AutoCloseEnabled    *bool    `json:"auto_close_enabled"`
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
}

// SettingsResponse is the API view of triage settings.
type SettingsResponse struct {
	AutoCloseEnabled    bool      `json:"auto_close_enabled"`
	ConfidenceThreshold float64   `json:"confidence_threshold"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToSettingsResponse maps domain settings to the API shape.
func ToSettingsResponse(settings *domain.Settings) SettingsResponse {
	return SettingsResponse{
		AutoCloseEnabled:    settings.AutoCloseEnabled,
		ConfidenceThreshold: settings.ConfidenceThreshold,
		UpdatedAt:           settings.UpdatedAt,
	}
}
