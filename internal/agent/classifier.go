package agent

import "strings"

const baseConfidence = 0.5

// categoryRule holds the keyword set for one category. Strong is the
// single keyword that earns the extra bonus when present.
type categoryRule struct {
	category string
	keywords []string
	strong   string
}

// Rules are checked in order and the first matching category wins, so
// billing outranks tech which outranks shipping when sets overlap.
var categoryRules = []categoryRule{
	{category: "billing", keywords: []string{"refund", "invoice", "billing", "payment"}, strong: "refund"},
	{category: "tech", keywords: []string{"error", "bug", "stack", "crash", "500", "not working"}, strong: "error"},
	{category: "shipping", keywords: []string{"delivery", "shipment", "tracking", "package", "delayed"}, strong: "tracking"},
}

func classify(text string) Classification {
	lower := strings.ToLower(text)
	category := "other"
	confidence := baseConfidence

	for _, rule := range categoryRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		category = rule.category
		confidence += 0.4
		if strings.Contains(lower, rule.strong) {
			confidence += 0.1
		}
		if confidence > 1 {
			confidence = 1
		}
		break
	}

	return Classification{
		PredictedCategory: toCategory(category),
		Confidence:        confidence,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
