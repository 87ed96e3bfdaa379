package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/dto"
	"github.com/smart-helpdesk/helpdesk/internal/service"
)

// AgentHandler exposes triage suggestions and manual triage runs.
type AgentHandler struct {
	triage *service.TriageService
}

// NewAgentHandler constructs the handler.
func NewAgentHandler(triage *service.TriageService) *AgentHandler {
	return &AgentHandler{triage: triage}
}

// Suggestion returns the stored suggestion for a ticket with its cited
// articles resolved. Staff only.
func (h *AgentHandler) Suggestion(c *fiber.Ctx) error {
	suggestion, articles, err := h.triage.GetSuggestion(c.Context(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToSuggestionResponse(suggestion, articles))
}

// Triage runs the pipeline synchronously for a ticket. Admin only;
// used to retry tickets whose background run failed.
func (h *AgentHandler) Triage(c *fiber.Ctx) error {
	ticketID := c.Params("ticketId")
	if err := h.triage.RunTriage(c.Context(), ticketID); err != nil {
		return err
	}

	suggestion, articles, err := h.triage.GetSuggestion(c.Context(), ticketID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ToSuggestionResponse(suggestion, articles))
}
