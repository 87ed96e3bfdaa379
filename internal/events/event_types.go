package events

import (
	"time"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketTriaged       EventType = "ticket_triaged"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketReplied       EventType = "ticket_replied"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role   domain.UserRole `json:"role"`
	UserID *string         `json:"user_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Category domain.TicketCategory `json:"category"`
	Title    string                `json:"title"`
}

// TicketTriagedPayload payload.
type TicketTriagedPayload struct {
	Status     domain.TicketStatus `json:"status"`
	AutoClosed bool                `json:"auto_closed"`
	Confidence float64             `json:"confidence"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketRepliedPayload payload.
type TicketRepliedPayload struct {
	BodyPreview string `json:"body_preview"`
}
