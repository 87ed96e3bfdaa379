package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/agent"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/events"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// triagePlan is the fixed step sequence recorded at the start of every run.
var triagePlan = []string{"CLASSIFY", "RETRIEVE", "DRAFT", "DECIDE"}

// TriageService orchestrates the classify/retrieve/draft/decide
// pipeline for one ticket and owns the resulting Suggestion.
type TriageService struct {
	tickets     repository.TicketRepository
	suggestions repository.SuggestionRepository
	articles    repository.ArticleRepository
	settings    *SettingsService
	audit       *AuditService
	provider    agent.Provider
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// TriageDependencies bundles requirements for the triage service.
type TriageDependencies struct {
	TicketRepo     repository.TicketRepository
	SuggestionRepo repository.SuggestionRepository
	ArticleRepo    repository.ArticleRepository
	Settings       *SettingsService
	Audit          *AuditService
	Provider       agent.Provider
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewTriageService constructs the service.
func NewTriageService(deps TriageDependencies) *TriageService {
	return &TriageService{
		tickets:     deps.TicketRepo,
		suggestions: deps.SuggestionRepo,
		articles:    deps.ArticleRepo,
		settings:    deps.Settings,
		audit:       deps.Audit,
		provider:    deps.Provider,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// RunTriage executes the pipeline once for the given ticket under a
// fresh trace id. Every step is audited under that trace; on failure a
// TRIAGE_FAILED event is recorded and the error is returned to the
// caller, leaving the ticket in its prior status.
func (s *TriageService) RunTriage(ctx context.Context, ticketID string) error {
	traceID := uuid.NewString()
	s.logger.Info("starting triage", zap.String("ticket_id", ticketID), zap.String("trace_id", traceID))

	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionPlanCreated,
		map[string]any{"steps": triagePlan}, traceID)

	if err := s.run(ctx, ticketID, traceID); err != nil {
		s.logger.Error("triage failed",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
			zap.String("trace_id", traceID))
		s.audit.Append(ctx, ticketID, domain.ActorSystem, domain.ActionTriageFailed,
			map[string]any{"error": err.Error()}, traceID)
		return err
	}
	return nil
}

func (s *TriageService) run(ctx context.Context, ticketID, traceID string) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return err
	}

	ticketText := ticket.Title + " " + ticket.Description
	started := time.Now()

	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionClassificationStart, nil, traceID)
	classification := s.provider.Classify(ticketText)
	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionAgentClassified, map[string]any{
		"predictedCategory": classification.PredictedCategory,
		"confidence":        classification.Confidence,
	}, traceID)

	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionKBRetrievalStarted, nil, traceID)
	corpus, err := s.articles.ListPublished(ctx)
	if err != nil {
		return err
	}
	ranked := s.provider.Rank(ticketText, corpus)
	articleIDs := make([]string, 0, len(ranked))
	topArticles := make([]domain.Article, 0, len(ranked))
	for _, item := range ranked {
		articleIDs = append(articleIDs, item.Article.ID)
		topArticles = append(topArticles, item.Article)
	}
	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionKBRetrieved, map[string]any{
		"articleIds": articleIDs,
		"count":      len(articleIDs),
	}, traceID)

	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionDraftingStarted, nil, traceID)
	draft := s.provider.Draft(ticketText, topArticles)
	s.audit.Append(ctx, ticketID, domain.ActorAgent, domain.ActionDraftGenerated, map[string]any{
		"replyLength": len(draft.Reply),
		"citations":   draft.Citations,
	}, traceID)

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	confidence := clampConfidence(classification.Confidence)
	suggestion := &domain.Suggestion{
		TicketID:          ticket.ID,
		PredictedCategory: classification.PredictedCategory,
		ArticleIDs:        articleIDs,
		DraftReply:        draft.Reply,
		Confidence:        confidence,
		ModelInfo: domain.ModelInfo{
			Provider:      s.provider.Name(),
			Model:         s.provider.Model(),
			PromptVersion: s.provider.PromptVersion(),
			LatencyMs:     time.Since(started).Milliseconds(),
		},
	}

	// Persisted before any ticket mutation: a duplicate triage run dies
	// on the unique constraint here with the ticket untouched.
	if err := s.suggestions.Create(ctx, suggestion); err != nil {
		if err == repository.ErrDuplicateSuggestion {
			return apperrors.NewConflict("suggestion already exists for ticket",
				map[string]any{"ticket_id": ticket.ID})
		}
		return err
	}

	autoClosed := settings.AutoCloseEnabled && confidence >= settings.ConfidenceThreshold
	finalStatus := domain.TicketStatusWaitingHuman
	if autoClosed {
		finalStatus = domain.TicketStatusResolved
		if err := s.suggestions.SetAutoClosed(ctx, suggestion.ID, true); err != nil {
			return err
		}
		suggestion.AutoClosed = true
		s.audit.Append(ctx, ticket.ID, domain.ActorAgent, domain.ActionAutoClosed, map[string]any{
			"message": "Ticket auto-resolved based on high confidence suggestion.",
		}, traceID)
	} else {
		s.audit.Append(ctx, ticket.ID, domain.ActorAgent, domain.ActionAssignedToHuman, map[string]any{
			"message": "Ticket requires human review due to low confidence or auto-close disabled.",
		}, traceID)
	}

	ticket.Category = classification.PredictedCategory
	ticket.SuggestionID = &suggestion.ID
	ticket.Status = finalStatus
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return err
	}

	s.audit.Append(ctx, ticket.ID, domain.ActorAgent, domain.ActionTriageCompleted, map[string]any{
		"finalStatus": finalStatus,
		"autoClosed":  autoClosed,
	}, traceID)

	s.publish(ctx, events.Event{
		Type:     events.EventTicketTriaged,
		TicketID: ticket.ID,
		Actor:    events.Actor{Role: domain.RoleAgent},
		Payload: events.TicketTriagedPayload{
			Status:     finalStatus,
			AutoClosed: autoClosed,
			Confidence: confidence,
		},
	})

	s.logger.Info("triage completed",
		zap.String("ticket_id", ticket.ID),
		zap.String("trace_id", traceID),
		zap.String("status", string(finalStatus)),
		zap.Bool("auto_closed", autoClosed),
		zap.Float64("confidence", confidence))
	return nil
}

// GetSuggestion returns the suggestion for a ticket with its cited
// articles resolved, preserving citation order.
func (s *TriageService) GetSuggestion(ctx context.Context, ticketID string) (*domain.Suggestion, []domain.Article, error) {
	suggestion, err := s.suggestions.GetByTicketID(ctx, ticketID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("suggestion", map[string]any{"ticket_id": ticketID})
		}
		return nil, nil, err
	}

	articles, err := s.articles.GetByIDs(ctx, suggestion.ArticleIDs)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]domain.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}
	ordered := make([]domain.Article, 0, len(suggestion.ArticleIDs))
	for _, id := range suggestion.ArticleIDs {
		if article, ok := byID[id]; ok {
			ordered = append(ordered, article)
		}
	}
	return suggestion, ordered, nil
}

func (s *TriageService) publish(ctx context.Context, event events.Event) {
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

func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
