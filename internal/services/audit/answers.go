package audit

import (
	"fmt"
	"strings"

	"leadfair/internal/domain"
)

// OptionLabel returns the display label for a chosen option value, falling
// back to the raw value when no option matches.
func OptionLabel(q domain.Question, value any) string {
	for _, opt := range q.Options {
		if optionValueEqual(opt.Value, value) {
			return opt.Label
		}
	}
	return fmt.Sprint(value)
}

func optionValueEqual(a, b any) bool {
	// Option values mix strings and numbers; JSON decoding turns numbers
	// into float64, so compare through coercion when both sides parse.
	if fmt.Sprint(a) == fmt.Sprint(b) {
		return true
	}
	an, bn := coerce(a), coerce(b)
	return an == bn && an != 0
}

// BuildAnswerDetails renders a per-category transcript of assessment answers
// for inclusion in report prompts. Slider answers appear as "n/10"; choice
// answers as the chosen label plus its weight.
func BuildAnswerDetails(a *Audit, answers domain.AnswerSet) string {
	var lines []string
	for _, cat := range a.Categories {
		lines = append(lines, "\n"+cat.Name+":")
		for _, q := range a.assessmentFor(cat.Key) {
			val := answers[q.ID]
			if q.Kind == domain.KindSlider {
				lines = append(lines, fmt.Sprintf("- %s: %v/10", q.Text, val))
			} else if len(q.Options) > 0 {
				label := OptionLabel(q, val)
				lines = append(lines, fmt.Sprintf("- %s: %q (scored %v/10)", q.Text, label, val))
			}
		}
	}
	return strings.Join(lines, "\n")
}
