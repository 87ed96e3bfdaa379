package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
)

func TestClassifyBillingWithStrongKeyword(t *testing.T) {
	got := classify("Refund for double charge. I was charged twice for order #1234, please issue a refund.")

	assert.Equal(t, domain.CategoryBilling, got.PredictedCategory)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestClassifyBillingWithoutStrongKeyword(t *testing.T) {
	got := classify("Question about my latest invoice")

	assert.Equal(t, domain.CategoryBilling, got.PredictedCategory)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}

func TestClassifyTech(t *testing.T) {
	got := classify("App crashes with error 500 on login")

	assert.Equal(t, domain.CategoryTech, got.PredictedCategory)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestClassifyShipping(t *testing.T) {
	got := classify("Where is my package? The delivery seems delayed.")

	assert.Equal(t, domain.CategoryShipping, got.PredictedCategory)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
}

func TestClassifyNoMatchFallsBackToOther(t *testing.T) {
	got := classify("Please rename my account")

	assert.Equal(t, domain.CategoryOther, got.PredictedCategory)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)
}

func TestClassifyFirstMatchingCategoryWins(t *testing.T) {
	// billing outranks tech even when tech keywords are also present
	got := classify("Got an error while paying my invoice")

	assert.Equal(t, domain.CategoryBilling, got.PredictedCategory)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lower := classify("refund please")
	upper := classify("REFUND PLEASE")

	assert.Equal(t, lower, upper)
}

func TestClassifyDeterministic(t *testing.T) {
	text := "tracking number not working"
	first := classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, classify(text))
	}
}
