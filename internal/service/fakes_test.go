package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
)

// In-memory repository fakes backing the service tests. They mirror
// the Postgres implementations' contracts: pgx.ErrNoRows for misses,
// ErrDuplicateSuggestion for the per-ticket unique constraint, and
// ascending insertion order for audit listings.

type fakeTicketRepo struct {
	tickets map[string]domain.Ticket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]domain.Ticket)}
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	ticket.UpdatedAt = time.Now()
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := ticket
	return &copied, nil
}

func (r *fakeTicketRepo) ListWithFilter(_ context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, ticket := range r.tickets {
		if filter.CreatedBy != nil && ticket.CreatedBy != *filter.CreatedBy {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, ticket.Status) {
			continue
		}
		if len(filter.Categories) > 0 && !containsCategory(filter.Categories, ticket.Category) {
			continue
		}
		out = append(out, ticket)
	}
	return out, nil
}

func containsStatus(statuses []domain.TicketStatus, s domain.TicketStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsCategory(categories []domain.TicketCategory, c domain.TicketCategory) bool {
	for _, candidate := range categories {
		if candidate == c {
			return true
		}
	}
	return false
}

type fakeSuggestionRepo struct {
	byTicket map[string]domain.Suggestion
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{byTicket: make(map[string]domain.Suggestion)}
}

func (r *fakeSuggestionRepo) Create(_ context.Context, suggestion *domain.Suggestion) error {
	if _, exists := r.byTicket[suggestion.TicketID]; exists {
		return repository.ErrDuplicateSuggestion
	}
	if suggestion.ID == "" {
		suggestion.ID = uuid.NewString()
	}
	suggestion.CreatedAt = time.Now()
	suggestion.UpdatedAt = suggestion.CreatedAt
	r.byTicket[suggestion.TicketID] = *suggestion
	return nil
}

func (r *fakeSuggestionRepo) SetAutoClosed(_ context.Context, id string, autoClosed bool) error {
	for ticketID, suggestion := range r.byTicket {
		if suggestion.ID == id {
			suggestion.AutoClosed = autoClosed
			r.byTicket[ticketID] = suggestion
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeSuggestionRepo) GetByTicketID(_ context.Context, ticketID string) (*domain.Suggestion, error) {
	suggestion, ok := r.byTicket[ticketID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := suggestion
	return &copied, nil
}

type fakeArticleRepo struct {
	articles []domain.Article
}

func (r *fakeArticleRepo) Create(_ context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	r.articles = append(r.articles, *article)
	return nil
}

func (r *fakeArticleRepo) Update(_ context.Context, article *domain.Article) error {
	for i := range r.articles {
		if r.articles[i].ID == article.ID {
			r.articles[i] = *article
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeArticleRepo) Delete(_ context.Context, id string) error {
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	for _, article := range r.articles {
		if article.ID == id {
			copied := article
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeArticleRepo) GetByIDs(_ context.Context, ids []string) ([]domain.Article, error) {
	var out []domain.Article
	for _, article := range r.articles {
		for _, id := range ids {
			if article.ID == id {
				out = append(out, article)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) List(_ context.Context, status *domain.ArticleStatus) ([]domain.Article, error) {
	var out []domain.Article
	for _, article := range r.articles {
		if status != nil && article.Status != *status {
			continue
		}
		out = append(out, article)
	}
	return out, nil
}

func (r *fakeArticleRepo) ListPublished(_ context.Context) ([]domain.Article, error) {
	var out []domain.Article
	for _, article := range r.articles {
		if article.Status == domain.ArticleStatusPublished {
			out = append(out, article)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	events  []domain.AuditEvent
	failing bool
}

func (r *fakeAuditRepo) Append(_ context.Context, event *domain.AuditEvent) error {
	if r.failing {
		return pgx.ErrTxClosed
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.CreatedAt = time.Now()
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeAuditRepo) ListByTicket(_ context.Context, ticketID string) ([]domain.AuditEvent, error) {
	var out []domain.AuditEvent
	for _, event := range r.events {
		if event.TicketID == ticketID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) ListByTrace(_ context.Context, traceID string) ([]domain.AuditEvent, error) {
	var out []domain.AuditEvent
	for _, event := range r.events {
		if event.TraceID == traceID {
			out = append(out, event)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *domain.Settings
}

func (r *fakeSettingsRepo) GetOrCreate(_ context.Context) (*domain.Settings, error) {
	if r.settings == nil {
		r.settings = &domain.Settings{
			AutoCloseEnabled:    domain.DefaultAutoCloseEnabled,
			ConfidenceThreshold: domain.DefaultConfidenceThreshold,
			CreatedAt:           time.Now(),
			UpdatedAt:           time.Now(),
		}
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *domain.Settings) error {
	settings.UpdatedAt = time.Now()
	copied := *settings
	r.settings = &copied
	return nil
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// fakeTriageDispatcher records dispatched ticket ids.
type fakeTriageDispatcher struct {
	dispatched []string
}

func (d *fakeTriageDispatcher) Dispatch(ticketID string) {
	d.dispatched = append(d.dispatched, ticketID)
}

// fakeSettingsCache is a map-backed SettingsCache.
type fakeSettingsCache struct {
	settings    *domain.Settings
	hits        int
	invalidated int
}

func (c *fakeSettingsCache) Get(_ context.Context) (*domain.Settings, bool) {
	if c.settings == nil {
		return nil, false
	}
	c.hits++
	copied := *c.settings
	return &copied, true
}

func (c *fakeSettingsCache) Set(_ context.Context, settings *domain.Settings) {
	copied := *settings
	c.settings = &copied
}

func (c *fakeSettingsCache) Invalidate(_ context.Context) {
	c.settings = nil
	c.invalidated++
}
