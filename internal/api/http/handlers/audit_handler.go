package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smart-helpdesk/helpdesk/internal/api/dto"
	"github.com/smart-helpdesk/helpdesk/internal/service"
)

// AuditHandler serves cross-ticket audit queries. Staff only.
type AuditHandler struct {
	audit *service.AuditService
}

// NewAuditHandler constructs the handler.
func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ByTrace returns every event recorded under one trace id, oldest first.
func (h *AuditHandler) ByTrace(c *fiber.Ctx) error {
	events, err := h.audit.ByTrace(c.Context(), c.Params("traceId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"events": dto.ToAuditEventResponses(events)})
}
