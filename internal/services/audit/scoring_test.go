package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadfair/internal/domain"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "A"},
		{9, "A"},
		{8.99, "B"},
		{7, "B"},
		{6.99, "C"},
		{5, "C"},
		{4.99, "D"},
		{3, "D"},
		{2.99, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Grade(tt.score), "score %v", tt.score)
	}
}

func allAnswers(a *Audit, value any) domain.AnswerSet {
	answers := make(domain.AnswerSet)
	for _, q := range a.Assessment {
		answers[q.ID] = value
	}
	return answers
}

func TestCalculateScoresUniformAnswers(t *testing.T) {
	result := CalculateScores(VisibilityAudit, allAnswers(VisibilityAudit, 8))

	require.Len(t, result.Categories, 3)
	for _, c := range result.Categories {
		assert.Equal(t, 8.0, c.Score, c.Key)
		assert.Equal(t, "B", c.Grade, c.Key)
	}
	assert.Equal(t, 8.0, result.Overall)
	assert.Equal(t, "B", result.OverallGrade)
	assert.Empty(t, result.WeakQuestions)
}

func TestCalculateScoresMissingAnswersScoreZero(t *testing.T) {
	// One answered question per five-question category: mean is 10/5 = 2.
	answers := domain.AnswerSet{
		"google-ranking":    10,
		"ai-recommendation": 10,
		"gbp-status":        10,
	}
	result := CalculateScores(VisibilityAudit, answers)

	for _, c := range result.Categories {
		assert.Equal(t, 2.0, c.Score, c.Key)
		assert.Equal(t, "F", c.Grade, c.Key)
	}
	assert.Equal(t, 2.0, result.Overall)
}

func TestCalculateScoresRoundsToOneDecimal(t *testing.T) {
	answers := allAnswers(VisibilityAudit, 8)
	answers["google-ranking"] = 7 // (7+8+8+8+8)/5 = 7.8
	result := CalculateScores(VisibilityAudit, answers)

	var search domain.CategoryScore
	for _, c := range result.Categories {
		if c.Key == "search-visibility" {
			search = c
		}
	}
	assert.Equal(t, 7.8, search.Score)
}

func TestCalculateScoresCoercesAnswerTypes(t *testing.T) {
	answers := allAnswers(VisibilityAudit, "6")
	answers["google-ranking"] = 6.0
	answers["ai-recommendation"] = int64(6)
	answers["gbp-status"] = nil // unparseable, scores zero
	result := CalculateScores(VisibilityAudit, answers)

	for _, c := range result.Categories {
		if c.Key == "local-presence" {
			assert.Equal(t, 4.8, c.Score) // (0+6+6+6+6)/5
		} else {
			assert.Equal(t, 6.0, c.Score, c.Key)
		}
	}
}

func TestCalculateScoresCollectsWeakQuestions(t *testing.T) {
	answers := allAnswers(VisibilityAudit, 8)
	answers["mobile-friendly"] = 3
	answers["review-count"] = 0
	result := CalculateScores(VisibilityAudit, answers)

	require.Len(t, result.WeakQuestions, 2)
	assert.Equal(t, "mobile-friendly", result.WeakQuestions[0].ID)
	assert.Equal(t, "search-visibility", result.WeakQuestions[0].Category)
	assert.Equal(t, 3.0, result.WeakQuestions[0].Score)
	assert.Equal(t, "review-count", result.WeakQuestions[1].ID)
}

func TestCalculateScoresWeakTrackingOffForOtherVariants(t *testing.T) {
	result := CalculateScores(SecurityAudit, allAnswers(SecurityAudit, 1))
	assert.Empty(t, result.WeakQuestions)
	assert.Equal(t, 1.0, result.Overall)
	assert.Equal(t, "F", result.OverallGrade)
}

func TestLookup(t *testing.T) {
	a, err := Lookup("Visibility")
	require.NoError(t, err)
	assert.Equal(t, Visibility, a.Variant)

	_, err = Lookup("nonsense")
	assert.Error(t, err)
}
