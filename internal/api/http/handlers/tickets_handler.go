package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/dto"
	"github.com/smart-helpdesk/helpdesk/internal/auth"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/service"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// TicketsHandler serves the ticket lifecycle endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
	audit   *service.AuditService
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(tickets *service.TicketService, audit *service.AuditService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, audit: audit}
}

// Create opens a new ticket for the caller and schedules triage.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	ticket, err := h.tickets.CreateTicket(c.Context(), caller.ID, service.TicketCreateInput{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    domain.TicketCategory(req.Category),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.ToTicketResponse(ticket))
}

// List returns tickets visible to the caller. End-users see only their
// own; staff see everything.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	filter := service.TicketListFilter{
		Limit:  parseIntQuery(c, "limit", 50),
		Offset: parseIntQuery(c, "offset", 0),
	}
	for _, raw := range splitQuery(c.Query("status")) {
		filter.Statuses = append(filter.Statuses, domain.TicketStatus(raw))
	}
	for _, raw := range splitQuery(c.Query("category")) {
		filter.Categories = append(filter.Categories, domain.TicketCategory(raw))
	}

	tickets, err := h.tickets.ListTickets(c.Context(), caller, filter)
	if err != nil {
		return err
	}

	return c.JSON(dto.ToTicketListResponse(tickets))
}

// Get returns a single ticket if the caller may see it.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	ticket, err := h.tickets.GetTicket(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(dto.ToTicketResponse(ticket))
}

// UpdateStatus transitions a ticket through its lifecycle. Staff only.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	ticket, err := h.tickets.UpdateStatus(c.Context(), caller, c.Params("id"), domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(dto.ToTicketResponse(ticket))
}

// Reply records a staff reply and resolves the ticket.
func (h *TicketsHandler) Reply(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	ticket, err := h.tickets.AddReply(c.Context(), caller, c.Params("id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(dto.ToTicketResponse(ticket))
}

// Audit returns the ticket's audit timeline, oldest first.
func (h *TicketsHandler) Audit(c *fiber.Ctx) error {
	caller, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	// Visibility piggybacks on ticket access rules.
	ticket, err := h.tickets.GetTicket(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}

	events, err := h.audit.ByTicket(c.Context(), ticket.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"events": dto.ToAuditEventResponses(events)})
}

func parseIntQuery(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func splitQuery(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
