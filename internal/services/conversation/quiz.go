package conversation

import (
	"errors"
	"sync"

	"leadfair/internal/domain"
	"leadfair/internal/services/audit"
)

// sliderDefault is pre-recorded the first time a slider question is shown,
// so skipping straight to Next still scores the visible midpoint.
const sliderDefault = 5

var (
	errQuizDone     = errors.New("quiz already past questions")
	errUnanswered   = errors.New("current question not answered")
	errFirstAlready = errors.New("already at first question")
)

// Quiz steps through a fixed question list one at a time. It moves to
// capture after the last answer and to results after capture; neither
// transition can be walked back.
type Quiz struct {
	mu        sync.Mutex
	questions []domain.Question
	index     int
	answers   domain.AnswerSet
	phase     domain.QuizPhase
}

// NewQuiz walks only the scored assessment questions; the chat flow gathers
// discovery answers conversationally instead.
func NewQuiz(a *audit.Audit) *Quiz {
	return NewQuizOver(a.Assessment)
}

// NewQuizOver walks an explicit question list, discovery included. The form
// variants use this with the full questionnaire.
func NewQuizOver(questions []domain.Question) *Quiz {
	q := &Quiz{
		questions: questions,
		answers:   make(domain.AnswerSet, len(questions)),
		phase:     domain.QuizQuestions,
	}
	q.seedSlider()
	return q
}

func (q *Quiz) Phase() domain.QuizPhase {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.phase
}

// Current returns the question being shown, or false once the quiz has left
// the questions phase.
func (q *Quiz) Current() (domain.Question, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != domain.QuizQuestions || q.index >= len(q.questions) {
		return domain.Question{}, false
	}
	return q.questions[q.index], true
}

// Progress reports the zero-based index and total question count.
func (q *Quiz) Progress() (int, int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.index, len(q.questions)
}

// Answer records a value for the current question, overwriting any earlier
// answer on revisit.
func (q *Quiz) Answer(value any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != domain.QuizQuestions || q.index >= len(q.questions) {
		return errQuizDone
	}
	q.answers[q.questions[q.index].ID] = value
	return nil
}

// Next advances to the following question, or to capture after the last
// one. Required questions must be answered first.
func (q *Quiz) Next() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != domain.QuizQuestions || q.index >= len(q.questions) {
		return errQuizDone
	}
	cur := q.questions[q.index]
	if _, answered := q.answers[cur.ID]; !answered && !cur.Optional {
		return errUnanswered
	}
	if q.index == len(q.questions)-1 {
		q.phase = domain.QuizCapture
		return nil
	}
	q.index++
	q.seedSliderLocked()
	return nil
}

// Back steps to the previous question. Capture and results cannot be walked
// back into the questions.
func (q *Quiz) Back() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != domain.QuizQuestions {
		return errQuizDone
	}
	if q.index == 0 {
		return errFirstAlready
	}
	q.index--
	return nil
}

// Finish moves capture to results. It is a no-op in any other phase.
func (q *Quiz) Finish() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase == domain.QuizCapture {
		q.phase = domain.QuizResults
	}
}

// Load merges answers captured elsewhere, for clients that run their own
// question walker and hand the result over at submission.
func (q *Quiz) Load(answers domain.AnswerSet) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for k, v := range answers {
		q.answers[k] = v
	}
}

// Answers returns a copy of everything recorded so far.
func (q *Quiz) Answers() domain.AnswerSet {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make(domain.AnswerSet, len(q.answers))
	for k, v := range q.answers {
		out[k] = v
	}
	return out
}

func (q *Quiz) seedSlider() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seedSliderLocked()
}

func (q *Quiz) seedSliderLocked() {
	if q.index >= len(q.questions) {
		return
	}
	cur := q.questions[q.index]
	if cur.Kind != domain.KindSlider {
		return
	}
	if _, answered := q.answers[cur.ID]; !answered {
		q.answers[cur.ID] = sliderDefault
	}
}
