package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/agent"
	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

type triageFixture struct {
	service     *TriageService
	tickets     *fakeTicketRepo
	suggestions *fakeSuggestionRepo
	articles    *fakeArticleRepo
	audit       *fakeAuditRepo
	settings    *fakeSettingsRepo
}

func newTriageFixture(published ...domain.Article) *triageFixture {
	f := &triageFixture{
		tickets:     newFakeTicketRepo(),
		suggestions: newFakeSuggestionRepo(),
		articles:    &fakeArticleRepo{},
		audit:       &fakeAuditRepo{},
		settings:    &fakeSettingsRepo{},
	}
	for i := range published {
		_ = f.articles.Create(context.Background(), &published[i])
	}

	logger := zap.NewNop()
	f.service = NewTriageService(TriageDependencies{
		TicketRepo:     f.tickets,
		SuggestionRepo: f.suggestions,
		ArticleRepo:    f.articles,
		Settings:       NewSettingsService(f.settings, nil, logger),
		Audit:          NewAuditService(f.audit, logger),
		Provider:       agent.NewStubProvider(),
		Dispatcher:     nil,
		Logger:         logger,
	})
	return f
}

func (f *triageFixture) seedTicket(title, description string) *domain.Ticket {
	ticket := &domain.Ticket{
		Title:       title,
		Description: description,
		Category:    domain.CategoryOther,
		Status:      domain.TicketStatusOpen,
		CreatedBy:   "user-1",
	}
	_ = f.tickets.Create(context.Background(), ticket)
	return ticket
}

func publishedArticle(title, body string, tags ...string) domain.Article {
	return domain.Article{
		Title:  title,
		Body:   body,
		Tags:   tags,
		Status: domain.ArticleStatusPublished,
	}
}

func actionsFor(events []domain.AuditEvent) []string {
	out := make([]string, 0, len(events))
	for _, event := range events {
		out = append(out, event.Action)
	}
	return out
}

func TestRunTriageAutoCloses(t *testing.T) {
	f := newTriageFixture(publishedArticle("Refund policy", "How refunds work", "billing"))
	ticket := f.seedTicket("Refund for double charge", "I was charged twice, please refund the duplicate payment.")

	err := f.service.RunTriage(context.Background(), ticket.ID)
	require.NoError(t, err)

	updated, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, domain.CategoryBilling, updated.Category)
	require.NotNil(t, updated.SuggestionID)

	suggestion, err := f.suggestions.GetByTicketID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated.SuggestionID, suggestion.ID)
	assert.True(t, suggestion.AutoClosed)
	assert.Equal(t, domain.CategoryBilling, suggestion.PredictedCategory)
	assert.InDelta(t, 1.0, suggestion.Confidence, 1e-9)
	assert.Equal(t, "stub", suggestion.ModelInfo.Provider)
	assert.Equal(t, "keyword-matcher-v1", suggestion.ModelInfo.Model)

	events, err := f.audit.ListByTicket(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{
		domain.ActionPlanCreated,
		domain.ActionClassificationStart,
		domain.ActionAgentClassified,
		domain.ActionKBRetrievalStarted,
		domain.ActionKBRetrieved,
		domain.ActionDraftingStarted,
		domain.ActionDraftGenerated,
		domain.ActionAutoClosed,
		domain.ActionTriageCompleted,
	}, actionsFor(events))

	traceID := events[0].TraceID
	assert.NotEmpty(t, traceID)
	for _, event := range events {
		assert.Equal(t, traceID, event.TraceID)
		assert.Equal(t, domain.ActorAgent, event.Actor)
	}
}

func TestRunTriageLowConfidenceWaitsForHuman(t *testing.T) {
	f := newTriageFixture(publishedArticle("Account basics", "General account help"))
	ticket := f.seedTicket("Please rename my account", "My display name is outdated.")

	err := f.service.RunTriage(context.Background(), ticket.ID)
	require.NoError(t, err)

	updated, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusWaitingHuman, updated.Status)
	assert.Equal(t, domain.CategoryOther, updated.Category)

	suggestion, err := f.suggestions.GetByTicketID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.False(t, suggestion.AutoClosed)
	assert.InDelta(t, 0.5, suggestion.Confidence, 1e-9)

	events, err := f.audit.ListByTicket(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Contains(t, actionsFor(events), domain.ActionAssignedToHuman)
	assert.NotContains(t, actionsFor(events), domain.ActionAutoClosed)
}

func TestRunTriageRespectsAutoCloseDisabled(t *testing.T) {
	f := newTriageFixture()
	settings, err := f.settings.GetOrCreate(context.Background())
	require.NoError(t, err)
	settings.AutoCloseEnabled = false
	require.NoError(t, f.settings.Update(context.Background(), settings))

	ticket := f.seedTicket("Refund request", "Please refund my last payment.")

	require.NoError(t, f.service.RunTriage(context.Background(), ticket.ID))

	updated, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusWaitingHuman, updated.Status)

	suggestion, err := f.suggestions.GetByTicketID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.False(t, suggestion.AutoClosed)
	assert.GreaterOrEqual(t, suggestion.Confidence, domain.DefaultConfidenceThreshold)
}

func TestRunTriageDuplicateLeavesTicketIntact(t *testing.T) {
	f := newTriageFixture()
	ticket := f.seedTicket("Refund for double charge", "Charged twice, want a refund.")

	require.NoError(t, f.service.RunTriage(context.Background(), ticket.ID))

	first, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)

	err = f.service.RunTriage(context.Background(), ticket.ID)
	require.Error(t, err)

	second, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.SuggestionID, second.SuggestionID)
	assert.Equal(t, first.Category, second.Category)

	events, _ := f.audit.ListByTicket(context.Background(), ticket.ID)
	var failed []domain.AuditEvent
	for _, event := range events {
		if event.Action == domain.ActionTriageFailed {
			failed = append(failed, event)
		}
	}
	require.Len(t, failed, 1)
	assert.Equal(t, domain.ActorSystem, failed[0].Actor)
}

func TestRunTriageMissingTicket(t *testing.T) {
	f := newTriageFixture()

	err := f.service.RunTriage(context.Background(), "no-such-ticket")
	require.Error(t, err)

	events, _ := f.audit.ListByTicket(context.Background(), "no-such-ticket")
	assert.Contains(t, actionsFor(events), domain.ActionTriageFailed)
}

func TestRunTriageFallbackDraftWhenNoArticles(t *testing.T) {
	f := newTriageFixture()
	ticket := f.seedTicket("Refund please", "Charged twice for one refund order.")

	require.NoError(t, f.service.RunTriage(context.Background(), ticket.ID))

	suggestion, err := f.suggestions.GetByTicketID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, agent.FallbackReply, suggestion.DraftReply)
	assert.Empty(t, suggestion.ArticleIDs)
}

func TestGetSuggestionPreservesCitationOrder(t *testing.T) {
	f := newTriageFixture()
	first := publishedArticle("Alpha", "body")
	second := publishedArticle("Beta", "body")
	require.NoError(t, f.articles.Create(context.Background(), &first))
	require.NoError(t, f.articles.Create(context.Background(), &second))

	require.NoError(t, f.suggestions.Create(context.Background(), &domain.Suggestion{
		TicketID:          "ticket-1",
		PredictedCategory: domain.CategoryOther,
		ArticleIDs:        []string{second.ID, first.ID},
		DraftReply:        "draft",
		Confidence:        0.5,
	}))

	_, articles, err := f.service.GetSuggestion(context.Background(), "ticket-1")
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, second.ID, articles[0].ID)
	assert.Equal(t, first.ID, articles[1].ID)
}

func TestGetSuggestionNotFound(t *testing.T) {
	f := newTriageFixture()

	_, _, err := f.service.GetSuggestion(context.Background(), "ticket-1")
	assert.Error(t, err)
}
