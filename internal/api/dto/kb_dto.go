package dto

import (
	"time"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// ArticleRequest is the payload for creating or updating an article.
type ArticleRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

// ArticleResponse is the API view of a knowledge base article.
type ArticleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleListResponse wraps a list of articles.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// ToArticleResponse maps a domain article to its API shape.
func ToArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Body:      article.Body,
		Tags:      article.Tags,
		Status:    string(article.Status),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// ToArticleListResponse maps a slice of articles.
func ToArticleListResponse(articles []domain.Article) ArticleListResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, ToArticleResponse(&articles[i]))
	}
	return ArticleListResponse{Articles: out, Count: len(out)}
}
