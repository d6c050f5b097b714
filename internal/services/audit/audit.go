package audit

import (
	"fmt"
	"strings"

	"leadfair/internal/domain"
)

// Variant identifies one of the audit questionnaires.
type Variant string

const (
	Diagnostic Variant = "diagnostic"
	Security   Variant = "security"
	Visibility Variant = "visibility"
)

// Audit bundles the immutable reference data for one questionnaire: its
// categories, the discovery questions that gather business context, and the
// scored assessment questions. TrackWeak enables weak-question collection
// during scoring.
type Audit struct {
	Variant    Variant
	Categories []domain.Category
	Discovery  []domain.Question
	Assessment []domain.Question
	TrackWeak  bool

	// Recommendations maps weak assessment question ids to targeted advice.
	// Only the visibility audit populates it.
	Recommendations map[string]string
}

// Questions returns discovery and assessment questions in presentation order.
func (a *Audit) Questions() []domain.Question {
	all := make([]domain.Question, 0, len(a.Discovery)+len(a.Assessment))
	all = append(all, a.Discovery...)
	all = append(all, a.Assessment...)
	return all
}

func (a *Audit) assessmentFor(categoryKey string) []domain.Question {
	var qs []domain.Question
	for _, q := range a.Assessment {
		if q.Category == categoryKey {
			qs = append(qs, q)
		}
	}
	return qs
}

// Lookup resolves a variant name, case-insensitively.
func Lookup(name string) (*Audit, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case Diagnostic:
		return DiagnosticAudit, nil
	case Security:
		return SecurityAudit, nil
	case Visibility:
		return VisibilityAudit, nil
	}
	return nil, fmt.Errorf("unknown audit variant %q", name)
}
