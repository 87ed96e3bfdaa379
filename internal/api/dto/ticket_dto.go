package dto

import (
	"time"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// CreateTicketRequest is the payload for opening a ticket.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// UpdateStatusRequest moves a ticket through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReplyRequest is the payload for a staff reply.
type ReplyRequest struct {
	Content string `json:"content"`
}

// TicketResponse is the API view of a ticket.
type TicketResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"created_by"`
	AssigneeID   *string   `json:"assignee_id,omitempty"`
	SuggestionID *string   `json:"suggestion_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TicketListResponse wraps a page of tickets.
type TicketListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
	Count   int              `json:"count"`
}

// AuditEventResponse is the API view of a single audit entry.
type AuditEventResponse struct {
	ID        string         `json:"id"`
	TicketID  string         `json:"ticket_id"`
	TraceID   string         `json:"trace_id"`
	Actor     string         `json:"actor"`
	Action    string         `json:"action"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToTicketResponse maps a domain ticket to its API shape.
func ToTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Category:     string(ticket.Category),
		Status:       string(ticket.Status),
		CreatedBy:    ticket.CreatedBy,
		AssigneeID:   ticket.AssigneeID,
		SuggestionID: ticket.SuggestionID,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
	}
}

// ToTicketListResponse maps a slice of tickets.
func ToTicketListResponse(tickets []domain.Ticket) TicketListResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, ToTicketResponse(&tickets[i]))
	}
	return TicketListResponse{Tickets: out, Count: len(out)}
}

// ToAuditEventResponses maps audit events preserving order.
func ToAuditEventResponses(events []domain.AuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, AuditEventResponse{
			ID:        event.ID,
			TicketID:  event.TicketID,
			TraceID:   event.TraceID,
			Actor:     string(event.Actor),
			Action:    event.Action,
			Meta:      event.Meta,
			CreatedAt: event.CreatedAt,
		})
	}
	return out
}
