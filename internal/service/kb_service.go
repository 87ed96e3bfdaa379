package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
	apperrors "github.com/smart-helpdesk/helpdesk/pkg/util"
)

// KBService manages knowledge-base articles. Writes are staff-only
// (enforced at the route level); retrieval only ever sees published
// articles.
type KBService struct {
	articles repository.ArticleRepository
	logger   *zap.Logger
}

// ArticleInput describes article create/update payload.
type ArticleInput struct {
	Title  string
	Body   string
	Tags   []string
	Status domain.ArticleStatus
}

// NewKBService constructs the service.
func NewKBService(articles repository.ArticleRepository, logger *zap.Logger) *KBService {
	return &KBService{articles: articles, logger: logger}
}

// CreateArticle validates and persists a new article.
func (s *KBService) CreateArticle(ctx context.Context, input ArticleInput) (*domain.Article, error) {
	article, err := articleFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	s.logger.Info("article created", zap.String("article_id", article.ID), zap.String("status", string(article.Status)))
	return article, nil
}

// UpdateArticle replaces an article's content.
func (s *KBService) UpdateArticle(ctx context.Context, id string, input ArticleInput) (*domain.Article, error) {
	updated, err := articleFromInput(input)
	if err != nil {
		return nil, err
	}
	article, err := s.getArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Title = updated.Title
	article.Body = updated.Body
	article.Tags = updated.Tags
	article.Status = updated.Status
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes an article permanently.
func (s *KBService) DeleteArticle(ctx context.Context, id string) error {
	if err := s.articles.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("article", map[string]any{"article_id": id})
		}
		return err
	}
	s.logger.Info("article deleted", zap.String("article_id", id))
	return nil
}

// GetArticle fetches one article by id.
func (s *KBService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.getArticle(ctx, id)
}

// ListArticles returns articles, optionally filtered by status.
func (s *KBService) ListArticles(ctx context.Context, status *domain.ArticleStatus) ([]domain.Article, error) {
	return s.articles.List(ctx, status)
}

func (s *KBService) getArticle(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("article", map[string]any{"article_id": id})
		}
		return nil, err
	}
	return article, nil
}

func articleFromInput(input ArticleInput) (*domain.Article, error) {
	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if title == "" || body == "" {
		return nil, apperrors.NewValidationError("title and body required", nil)
	}
	status := input.Status
	if status == "" {
		status = domain.ArticleStatusDraft
	}
	if status != domain.ArticleStatusDraft && status != domain.ArticleStatusPublished {
		return nil, apperrors.NewValidationError("unknown article status", map[string]any{"status": status})
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Article{Title: title, Body: body, Tags: tags, Status: status}, nil
}
