package domain

import "time"

// ModelInfo records provenance for a generated suggestion.
type ModelInfo struct {
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	PromptVersion string `json:"prompt_version"`
	LatencyMs     int64  `json:"latency_ms"`
}

// Suggestion is the persisted output of one triage run. At most one
// exists per ticket; a second triage run fails on the unique constraint.
type Suggestion struct {
	ID                string
	TicketID          string
	PredictedCategory TicketCategory
	ArticleIDs        []string
	DraftReply        string
	Confidence        float64
	AutoClosed        bool
	ModelInfo         ModelInfo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
