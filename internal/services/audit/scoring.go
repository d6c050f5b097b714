package audit

import (
	"math"
	"strconv"

	"leadfair/internal/domain"
)

// weakThreshold marks individual answers that deserve a targeted
// recommendation.
const weakThreshold = 3

// CalculateScores maps an answer set to per-category scores, an overall
// score, and letter grades. It is total over well-formed input: a missing or
// unparsable answer counts as 0. Recorded reports depend on that silent-zero
// default; changing it means a new report version.
func CalculateScores(a *Audit, answers domain.AnswerSet) domain.ScoreResult {
	var weak []domain.WeakQuestion

	cats := make([]domain.CategoryScore, 0, len(a.Categories))
	for _, cat := range a.Categories {
		questions := a.assessmentFor(cat.Key)
		sum := 0.0
		for _, q := range questions {
			v := coerce(answers[q.ID])
			if a.TrackWeak && v <= weakThreshold {
				weak = append(weak, domain.WeakQuestion{
					ID:       q.ID,
					Text:     q.Text,
					Score:    v,
					Category: cat.Key,
				})
			}
			sum += v
		}
		avg := 0.0
		if len(questions) > 0 {
			avg = sum / float64(len(questions))
		}
		score := round1(avg)
		cats = append(cats, domain.CategoryScore{
			Key:         cat.Key,
			Name:        cat.Name,
			Color:       cat.Color,
			Score:       score,
			Grade:       Grade(score),
			Service:     cat.Service,
			ServiceDesc: cat.ServiceDesc,
			Actions:     cat.Actions,
		})
	}

	overall := 0.0
	if len(cats) > 0 {
		sum := 0.0
		for _, c := range cats {
			sum += c.Score
		}
		overall = round1(sum / float64(len(cats)))
	}

	return domain.ScoreResult{
		Categories:    cats,
		Overall:       overall,
		OverallGrade:  Grade(overall),
		WeakQuestions: weak,
	}
}

// Grade maps a 0-10 score to a letter. Thresholds are evaluated high to low;
// first match wins. Identical for category and overall scores.
func Grade(score float64) string {
	switch {
	case score >= 9:
		return "A"
	case score >= 7:
		return "B"
	case score >= 5:
		return "C"
	case score >= 3:
		return "D"
	}
	return "F"
}

// coerce turns an answer value into its numeric weight. Numbers pass
// through, numeric strings parse, everything else is 0.
func coerce(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// round1 rounds to one decimal, half away from zero, matching the arithmetic
// used when the recorded reports were generated.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
