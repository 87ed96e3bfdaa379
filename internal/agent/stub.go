package agent

import "github.com/smart-helpdesk/helpdesk/internal/domain"

// StubProvider is the deterministic keyword engine. It implements
// Provider so the pipeline can swap in a real model later without
// touching orchestration.
type StubProvider struct{}

// NewStubProvider returns the keyword-matching engine.
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

// Classify implements Classifier.
func (p *StubProvider) Classify(text string) Classification {
	return classify(text)
}

// Rank implements Retriever.
func (p *StubProvider) Rank(query string, corpus []domain.Article) []RankedArticle {
	return rank(query, corpus)
}

// Draft implements Drafter.
func (p *StubProvider) Draft(text string, articles []domain.Article) Draft {
	return draft(text, articles)
}

// Name implements Provider.
func (p *StubProvider) Name() string { return "stub" }

// Model implements Provider.
func (p *StubProvider) Model() string { return "keyword-matcher-v1" }

// PromptVersion implements Provider.
func (p *StubProvider) PromptVersion() string { return "1.0.0" }

func toCategory(name string) domain.TicketCategory {
	switch name {
	case "billing":
		return domain.CategoryBilling
	case "tech":
		return domain.CategoryTech
	case "shipping":
		return domain.CategoryShipping
	default:
		return domain.CategoryOther
	}
}
