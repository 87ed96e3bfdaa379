package domain

import "time"

// Default triage tunables used when no settings row exists yet.
const (
	DefaultAutoCloseEnabled    = true
	DefaultConfidenceThreshold = 0.78
)

// Settings is the single logical configuration instance for the triage
// decision rule. Last writer wins; no versioning.
type Settings struct {
	AutoCloseEnabled    bool    `json:"auto_close_enabled"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SettingsPatch carries the fields of a partial update. Nil fields are
// left untouched.
type SettingsPatch struct {
	AutoCloseEnabled    *bool
	ConfidenceThreshold *float64
}
