package agent

import (
	"regexp"
	"sort"
	"strings"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

const (
	maxRetrieved  = 3
	fallbackCount = 5
	// fallbackScore is the nominal score given to recency-fallback
	// results when the query has no usable tokens.
	fallbackScore = 0.1

	titleWeight = 3
	bodyWeight  = 1
	tagWeight   = 2
)

// rank scores every article in the corpus against the query tokens and
// returns the top results, zero scores dropped. The corpus is expected
// to contain published articles ordered most-recently-updated first;
// ties keep corpus order (stable sort) so results stay deterministic.
func rank(query string, corpus []domain.Article) []RankedArticle {
	tokens := tokenize(query)

	if len(tokens) == 0 {
		limit := fallbackCount
		if len(corpus) < limit {
			limit = len(corpus)
		}
		recent := make([]RankedArticle, 0, limit)
		for _, article := range corpus[:limit] {
			recent = append(recent, RankedArticle{Article: article, Score: fallbackScore})
		}
		return recent
	}

	scored := make([]RankedArticle, 0, len(corpus))
	for _, article := range corpus {
		score := scoreArticle(tokens, article)
		if score > 0 {
			scored = append(scored, RankedArticle{Article: article, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRetrieved {
		scored = scored[:maxRetrieved]
	}
	return scored
}

func scoreArticle(tokens []string, article domain.Article) float64 {
	lowerTitle := strings.ToLower(article.Title)
	lowerBody := strings.ToLower(article.Body)
	lowerTags := make([]string, len(article.Tags))
	for i, tag := range article.Tags {
		lowerTags[i] = strings.ToLower(tag)
	}

	var score float64
	for _, token := range tokens {
		pattern := wordPattern(token)
		inTitle := len(pattern.FindAllString(lowerTitle, -1))
		inBody := len(pattern.FindAllString(lowerBody, -1))
		inTags := 0
		for _, tag := range lowerTags {
			if strings.Contains(tag, token) {
				inTags++
			}
		}
		score += float64(inTitle*titleWeight + inBody*bodyWeight + inTags*tagWeight)
	}
	return score
}

// tokenize lowercases the query and keeps words longer than two runes.
func tokenize(query string) []string {
	words := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func wordPattern(token string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
}
