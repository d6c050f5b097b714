package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadfair/internal/domain"
)

func questionByID(t *testing.T, a *Audit, id string) domain.Question {
	t.Helper()
	for _, q := range a.Questions() {
		if q.ID == id {
			return q
		}
	}
	t.Fatalf("no question %q", id)
	return domain.Question{}
}

func TestOptionLabel(t *testing.T) {
	q := questionByID(t, VisibilityAudit, "google-ranking")

	assert.Equal(t, "Top 3 results", OptionLabel(q, 10))
	// JSON decoding delivers numbers as float64.
	assert.Equal(t, "Top 3 results", OptionLabel(q, float64(10)))
	assert.Equal(t, "Page 2 or beyond", OptionLabel(q, "3"))
	// Unknown values fall back to the raw value.
	assert.Equal(t, "42", OptionLabel(q, 42))
}

func TestBuildAnswerDetails(t *testing.T) {
	answers := domain.AnswerSet{
		"data-protection-confidence": 4,
		"password-sharing":           1,
	}
	details := BuildAnswerDetails(SecurityAudit, answers)

	assert.Contains(t, details, "How confident are you that customer data in your business is protected?: 4/10")
	assert.Contains(t, details, `"Yes — most accounts are shared" (scored 1/10)`)
	// Every category heading renders even when its questions went unanswered.
	for _, cat := range SecurityAudit.Categories {
		assert.Contains(t, details, cat.Name+":")
	}
}
