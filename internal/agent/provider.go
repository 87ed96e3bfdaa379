// Package agent holds the substitutable scoring components behind the
// triage pipeline: classification, knowledge-base retrieval and reply
// drafting. The deterministic keyword engine here stands in for a real
// model provider; the interfaces are what the pipeline depends on.
package agent

import "github.com/smart-helpdesk/helpdesk/internal/domain"

// Classification is the output of categorizing ticket text.
type Classification struct {
	PredictedCategory domain.TicketCategory
	Confidence        float64
}

// RankedArticle pairs an article with its retrieval score.
type RankedArticle struct {
	Article domain.Article
	Score   float64
}

// Draft is a composed reply plus the articles it cites, in rank order.
type Draft struct {
	Reply     string
	Citations []string
}

// Classifier maps ticket text to a category with a confidence score.
type Classifier interface {
	Classify(text string) Classification
}

// Retriever ranks a corpus of published articles against ticket text.
type Retriever interface {
	Rank(query string, corpus []domain.Article) []RankedArticle
}

// Drafter composes a reply referencing the top-ranked articles.
type Drafter interface {
	Draft(text string, articles []domain.Article) Draft
}

// Provider bundles the three components with provenance metadata so
// the pipeline can record which engine produced a suggestion.
type Provider interface {
	Classifier
	Retriever
	Drafter
	Name() string
	Model() string
	PromptVersion() string
}
