package dto

import (
	"time"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

// SuggestionResponse is the API view of a triage suggestion, with the
// cited articles resolved inline.
type SuggestionResponse struct {
	ID                string            `json:"id"`
	TicketID          string            `json:"ticket_id"`
	PredictedCategory string            `json:"predicted_category"`
	ArticleIDs        []string          `json:"article_ids"`
	Articles          []ArticleResponse `json:"articles"`
	DraftReply        string            `json:"draft_reply"`
	Confidence        float64           `json:"confidence"`
	AutoClosed        bool              `json:"auto_closed"`
	ModelInfo         domain.ModelInfo  `json:"model_info"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// ToSuggestionResponse maps a suggestion plus its cited articles.
func ToSuggestionResponse(suggestion *domain.Suggestion, articles []domain.Article) SuggestionResponse {
	cited := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		cited = append(cited, ToArticleResponse(&articles[i]))
	}
	return SuggestionResponse{
		ID:                suggestion.ID,
		TicketID:          suggestion.TicketID,
		PredictedCategory: string(suggestion.PredictedCategory),
		ArticleIDs:        suggestion.ArticleIDs,
		Articles:          cited,
		DraftReply:        suggestion.DraftReply,
		Confidence:        suggestion.Confidence,
		AutoClosed:        suggestion.AutoClosed,
		ModelInfo:         suggestion.ModelInfo,
		CreatedAt:         suggestion.CreatedAt,
		UpdatedAt:         suggestion.UpdatedAt,
	}
}
