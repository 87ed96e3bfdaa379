package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/events"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// TriageDispatcher hands a ticket off for asynchronous triage. The
// production implementation is the worker queue; tests invoke the
// pipeline synchronously through the same boundary.
type TriageDispatcher interface {
	Dispatch(ticketID string)
}

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	audit      *AuditService
	triage     TriageDispatcher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Audit      *AuditService
	Triage     TriageDispatcher
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
}

// TicketListFilter describes listing filters.
type TicketListFilter struct {
	Statuses   []domain.TicketStatus
	Categories []domain.TicketCategory
	Limit      int
	Offset     int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		audit:      deps.Audit,
		triage:     deps.Triage,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateTicket validates and persists a new ticket, then hands it to
// the triage queue without blocking the caller.
func (s *TicketService) CreateTicket(ctx context.Context, userID string, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}
	if !domain.ValidCategory(category) {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": category})
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: description,
		Category:    category,
		Status:      domain.TicketStatusOpen,
		CreatedBy:   userID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	// The creation event predates any workflow trace; the audit trail
	// flags the missing trace id as a data-quality warning.
	s.audit.Append(ctx, ticket.ID, domain.ActorSystem, domain.ActionTicketCreated,
		map[string]any{"message": "Ticket created by user"}, "")

	s.logger.Info("ticket created", zap.String("ticket_id", ticket.ID), zap.String("user_id", userID))

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    userActor(userID),
		Payload: events.TicketCreatedPayload{
			Category: ticket.Category,
			Title:    ticket.Title,
		},
	})

	if s.triage != nil {
		s.triage.Dispatch(ticket.ID)
	}
	return ticket, nil
}

// ListTickets returns tickets visible to the caller; plain users only
// see their own.
func (s *TicketService) ListTickets(ctx context.Context, caller *domain.User, filter TicketListFilter) ([]domain.Ticket, error) {
	repoFilter := repository.TicketFilter{
		Statuses:   filter.Statuses,
		Categories: filter.Categories,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}
	if !caller.Role.IsStaff() {
		repoFilter.CreatedBy = &caller.ID
	}
	return s.tickets.ListWithFilter(ctx, repoFilter)
}

// GetTicket fetches a ticket enforcing ownership for plain users.
func (s *TicketService) GetTicket(ctx context.Context, caller *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !caller.Role.IsStaff() && ticket.CreatedBy != caller.ID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// UpdateStatus applies a human status change through the state machine.
func (s *TicketService) UpdateStatus(ctx context.Context, caller *domain.User, ticketID string, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(ticket.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": ticket.Status,
			"to":   newStatus,
		})
	}

	oldStatus := ticket.Status
	ticket.Status = newStatus
	if newStatus == domain.TicketStatusResolved || newStatus == domain.TicketStatusClosed {
		assignee := caller.ID
		ticket.AssigneeID = &assignee
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.recordStatusChange(ctx, caller, ticket, oldStatus, newStatus)
	s.logger.Info("ticket status updated",
		zap.String("ticket_id", ticket.ID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(newStatus)),
		zap.String("user_id", caller.ID))
	return ticket, nil
}

// AddReply processes an agent reply. From waiting_human the ticket
// resolves with the replier as assignee; an already resolved or closed
// ticket is left untouched; any other status is forced to resolved,
// covering ad-hoc intervention outside the waiting queue.
func (s *TicketService) AddReply(ctx context.Context, caller *domain.User, ticketID, content string) (*domain.Ticket, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("reply content required", nil)
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	oldStatus := ticket.Status
	switch ticket.Status {
	case domain.TicketStatusResolved, domain.TicketStatusClosed:
		// no status change
	default:
		assignee := caller.ID
		ticket.Status = domain.TicketStatusResolved
		ticket.AssigneeID = &assignee
		if err := s.tickets.Update(ctx, ticket); err != nil {
			return nil, err
		}
		s.recordStatusChange(ctx, caller, ticket, oldStatus, domain.TicketStatusResolved)
	}

	s.audit.Append(ctx, ticket.ID, actorFromRole(caller.Role), domain.ActionReplySent,
		map[string]any{"messageSnippet": stringPreview(content, 50)}, ticket.ID)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketReplied,
		TicketID: ticket.ID,
		Actor:    roleActor(caller),
		Payload:  events.TicketRepliedPayload{BodyPreview: stringPreview(content, 120)},
	})

	s.logger.Info("reply added", zap.String("ticket_id", ticket.ID), zap.String("user_id", caller.ID))
	return ticket, nil
}

func (s *TicketService) getTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, err
	}
	return ticket, nil
}

// recordStatusChange audits the transition under the ticket id as the
// trace, grouping all events of one discrete human action.
func (s *TicketService) recordStatusChange(ctx context.Context, caller *domain.User, ticket *domain.Ticket, from, to domain.TicketStatus) {
	s.audit.Append(ctx, ticket.ID, actorFromRole(caller.Role), domain.ActionStatusChanged,
		map[string]any{"from": from, "to": to}, ticket.ID)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    roleActor(caller),
		Payload: events.TicketStatusChangedPayload{
			OldStatus: from,
			NewStatus: to,
		},
	})
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func userActor(userID string) events.Actor {
	return events.Actor{Role: domain.RoleUser, UserID: &userID}
}

func roleActor(user *domain.User) events.Actor {
	id := user.ID
	return events.Actor{Role: user.Role, UserID: &id}
}

// actorFromRole maps a caller role onto the audit actor vocabulary:
// staff actions are attributed to the agent actor, everything else to
// the user actor.
func actorFromRole(role domain.UserRole) domain.AuditActor {
	if role.IsStaff() {
		return domain.ActorAgent
	}
	return domain.ActorUser
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
