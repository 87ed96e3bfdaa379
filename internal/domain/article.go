package domain

import "time"

// ArticleStatus gates which knowledge-base articles retrieval may see.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article is a knowledge-base entry. Only published articles are
// eligible for retrieval.
type Article struct {
	ID        string
	Title     string
	Body      string
	Tags      []string
	Status    ArticleStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
