package agent

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

func TestDraftFallbackWhenNoArticles(t *testing.T) {
	got := draft("anything", nil)

	assert.Equal(t, FallbackReply, got.Reply)
	assert.Empty(t, got.Citations)
	assert.NotNil(t, got.Citations)
}

func TestDraftNumbersArticlesInOrder(t *testing.T) {
	articles := []domain.Article{
		article("a1", "Refund policy", "Short body"),
		article("a2", "Chargebacks", "Another body"),
	}

	got := draft("refund", articles)

	assert.True(t, strings.HasPrefix(got.Reply,
		"Based on your query, here are some relevant articles that might help:\n\n"))
	assert.Contains(t, got.Reply, "1. **Refund policy**: Short body...")
	assert.Contains(t, got.Reply, "2. **Chargebacks**: Another body...")
	assert.True(t, strings.HasSuffix(got.Reply,
		"\nPlease review the above information. If it doesn't resolve your issue, a human agent will assist you."))
	assert.Equal(t, []string{"a1", "a2"}, got.Citations)
}

func TestDraftTruncatesLongBodies(t *testing.T) {
	body := strings.Repeat("x", 250)
	got := draft("query", []domain.Article{article("a1", "Long", body)})

	expected := fmt.Sprintf("1. **Long**: %s...", body[:100])
	assert.Contains(t, got.Reply, expected)
	assert.NotContains(t, got.Reply, body[:101])
}

func TestDraftCapsCitations(t *testing.T) {
	articles := []domain.Article{
		article("a1", "one", ""),
		article("a2", "two", ""),
		article("a3", "three", ""),
		article("a4", "four", ""),
	}

	got := draft("query", articles)

	assert.Equal(t, []string{"a1", "a2", "a3"}, got.Citations)
	assert.NotContains(t, got.Reply, "4.")
}
