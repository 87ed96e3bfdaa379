package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// AuditService is the append-only, trace-correlated trail. Append never
// propagates failures upward: a telemetry outage must not abort triage
// or ticket mutation, so write errors are logged and swallowed.
type AuditService struct {
	events repository.AuditRepository
	logger *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(events repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{events: events, logger: logger}
}

// Append persists one event. A missing trace id is accepted but flagged
// as a data-quality warning since the event cannot be correlated.
func (s *AuditService) Append(ctx context.Context, ticketID string, actor domain.AuditActor, action string, meta map[string]any, traceID string) {
	if traceID == "" {
		s.logger.Warn("audit event created without trace id",
			zap.String("ticket_id", ticketID),
			zap.String("actor", string(actor)),
			zap.String("action", action))
	}
	if meta == nil {
		meta = map[string]any{}
	}

	event := &domain.AuditEvent{
		TicketID: ticketID,
		TraceID:  traceID,
		Actor:    actor,
		Action:   action,
		Meta:     meta,
	}
	if err := s.events.Append(ctx, event); err != nil {
		s.logger.Error("failed to append audit event",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
			zap.String("action", action),
			zap.String("trace_id", traceID))
		return
	}
	s.logger.Debug("audit event appended",
		zap.String("ticket_id", ticketID),
		zap.String("action", action),
		zap.String("trace_id", traceID))
}

// ByTicket returns all events for a ticket in ascending creation order.
func (s *AuditService) ByTicket(ctx context.Context, ticketID string) ([]domain.AuditEvent, error) {
	return s.events.ListByTicket(ctx, ticketID)
}

// ByTrace returns all events of one workflow run in ascending creation
// order, reconstructing the run end to end.
func (s *AuditService) ByTrace(ctx context.Context, traceID string) ([]domain.AuditEvent, error) {
	if traceID == "" {
		return nil, apperrors.NewValidationError("trace id required", nil)
	}
	return s.events.ListByTrace(ctx, traceID)
}
