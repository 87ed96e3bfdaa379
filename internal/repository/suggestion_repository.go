package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// SuggestionRepository stores triage outputs. The ticket_id column has
// a unique constraint; Create surfaces it as a conflict error.
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *domain.Suggestion) error
	SetAutoClosed(ctx context.Context, id string, autoClosed bool) error
	GetByTicketID(ctx context.Context, ticketID string) (*domain.Suggestion, error)
}

type suggestionRepository struct {
	pool *pgxpool.Pool
}

// NewSuggestionRepository builds repository.
func NewSuggestionRepository(pool *pgxpool.Pool) SuggestionRepository {
	return &suggestionRepository{pool: pool}
}

func (r *suggestionRepository) Create(ctx context.Context, suggestion *domain.Suggestion) error {
	const query = `
        INSERT INTO suggestions (ticket_id, predicted_category, article_ids, draft_reply, confidence, auto_closed, model_info)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		suggestion.TicketID,
		suggestion.PredictedCategory,
		suggestion.ArticleIDs,
		suggestion.DraftReply,
		suggestion.Confidence,
		suggestion.AutoClosed,
		suggestion.ModelInfo,
	).Scan(&suggestion.ID, &suggestion.CreatedAt, &suggestion.UpdatedAt)
	if IsUniqueViolation(err) {
		return ErrDuplicateSuggestion
	}
	return err
}

func (r *suggestionRepository) SetAutoClosed(ctx context.Context, id string, autoClosed bool) error {
	const query = `UPDATE suggestions SET auto_closed=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, autoClosed, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *suggestionRepository) GetByTicketID(ctx context.Context, ticketID string) (*domain.Suggestion, error) {
	const query = `
        SELECT id, ticket_id, predicted_category, article_ids, draft_reply, confidence, auto_closed, model_info, created_at, updated_at
        FROM suggestions WHERE ticket_id=$1`
	var suggestion domain.Suggestion
	if err := r.pool.QueryRow(ctx, query, ticketID).Scan(
		&suggestion.ID,
		&suggestion.TicketID,
		&suggestion.PredictedCategory,
		&suggestion.ArticleIDs,
		&suggestion.DraftReply,
		&suggestion.Confidence,
		&suggestion.AutoClosed,
		&suggestion.ModelInfo,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &suggestion, nil
}
