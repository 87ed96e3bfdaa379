package agent

import (
	"fmt"
	"strings"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

const (
	// FallbackReply is returned verbatim when retrieval finds nothing.
	FallbackReply = "I couldn't find specific information related to your query. A human agent will review your ticket shortly."

	excerptLen = 100
)

func draft(_ string, articles []domain.Article) Draft {
	if len(articles) == 0 {
		return Draft{Reply: FallbackReply, Citations: []string{}}
	}

	if len(articles) > maxRetrieved {
		articles = articles[:maxRetrieved]
	}

	var builder strings.Builder
	builder.WriteString("Based on your query, here are some relevant articles that might help:\n\n")
	citations := make([]string, 0, len(articles))

	for i, article := range articles {
		fmt.Fprintf(&builder, "%d. **%s**: %s...\n\n", i+1, article.Title, excerpt(article.Body))
		citations = append(citations, article.ID)
	}

	builder.WriteString("\nPlease review the above information. If it doesn't resolve your issue, a human agent will assist you.")

	return Draft{Reply: builder.String(), Citations: citations}
}

func excerpt(body string) string {
	if len(body) <= excerptLen {
		return body
	}
	return body[:excerptLen]
}
