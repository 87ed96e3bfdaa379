package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

func article(id, title, body string, tags ...string) domain.Article {
	return domain.Article{
		ID:     id,
		Title:  title,
		Body:   body,
		Tags:   tags,
		Status: domain.ArticleStatusPublished,
	}
}

func TestRankFieldWeights(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "refund guide", "how to request one"),
		article("a2", "payments", "refund steps explained"),
		article("a3", "payments", "general info", "refund"),
	}

	ranked := rank("refund", corpus)
	require.Len(t, ranked, 3)

	// title hit (3) > tag hit (2) > body hit (1)
	assert.Equal(t, "a1", ranked[0].Article.ID)
	assert.InDelta(t, 3.0, ranked[0].Score, 1e-9)
	assert.Equal(t, "a3", ranked[1].Article.ID)
	assert.InDelta(t, 2.0, ranked[1].Score, 1e-9)
	assert.Equal(t, "a2", ranked[2].Article.ID)
	assert.InDelta(t, 1.0, ranked[2].Score, 1e-9)
}

func TestRankDropsZeroScores(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "refund guide", "steps"),
		article("a2", "shipping times", "carrier overview"),
	}

	ranked := rank("refund", corpus)

	require.Len(t, ranked, 1)
	assert.Equal(t, "a1", ranked[0].Article.ID)
}

func TestRankCapsResults(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "refund refund refund", ""),
		article("a2", "refund refund", ""),
		article("a3", "refund", ""),
		article("a4", "", "refund"),
	}

	ranked := rank("refund", corpus)

	require.Len(t, ranked, 3)
	assert.Equal(t, "a1", ranked[0].Article.ID)
	assert.Equal(t, "a2", ranked[1].Article.ID)
	assert.Equal(t, "a3", ranked[2].Article.ID)
}

func TestRankWholeWordsOnly(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "refunds and chargebacks", "refundable items"),
	}

	// "refund" must not match inside "refunds" or "refundable"
	ranked := rank("refund", corpus)

	assert.Empty(t, ranked)
}

func TestRankTagMatchesAreSubstrings(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "payments", "overview", "refund-policy"),
	}

	ranked := rank("refund", corpus)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 2.0, ranked[0].Score, 1e-9)
}

func TestRankFallbackOnEmptyQuery(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "first", ""),
		article("a2", "second", ""),
		article("a3", "third", ""),
		article("a4", "fourth", ""),
		article("a5", "fifth", ""),
		article("a6", "sixth", ""),
	}

	// every word is two characters or fewer, so no tokens survive
	ranked := rank("ok to go", corpus)

	require.Len(t, ranked, 5)
	for i, item := range ranked {
		assert.Equal(t, corpus[i].ID, item.Article.ID)
		assert.InDelta(t, 0.1, item.Score, 1e-9)
	}
}

func TestRankFallbackSmallCorpus(t *testing.T) {
	corpus := []domain.Article{
		article("a1", "first", ""),
		article("a2", "second", ""),
	}

	ranked := rank("", corpus)

	require.Len(t, ranked, 2)
}

func TestRankTiesKeepCorpusOrder(t *testing.T) {
	// equal scores; corpus arrives most-recently-updated first
	corpus := []domain.Article{
		article("newer", "refund", ""),
		article("older", "refund", ""),
	}

	ranked := rank("refund", corpus)

	require.Len(t, ranked, 2)
	assert.Equal(t, "newer", ranked[0].Article.ID)
	assert.Equal(t, "older", ranked[1].Article.ID)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"refund", "double", "charge"}, tokenize("Refund on a double charge"))
	assert.Empty(t, tokenize("is it ok"))
}
