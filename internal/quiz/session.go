package quiz

import (
	"time"

	"github.com/google/uuid"

	"fsquiz/internal/question"
)

// Outcome is the graded result of one presented question.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeSkipped
)

// Summary is the terminal session score. Skipped and unasked questions count
// toward Total only.
type Summary struct {
	Correct  int
	Answered int
	Total    int
}

// Session holds the mutable state of one interactive quiz run: the selected
// questions, the cursor, and the running score. The interaction loop is the
// only writer; the session is discarded when the loop ends.
type Session struct {
	ID         string
	Questions  []question.Question
	PoolMedian float64
	Timed      bool

	index    int
	correct  int
	answered int
	quit     bool
}

// NewSession assembles a session over an already-sampled question list.
func NewSession(selected []question.Question, poolMedian float64, timed bool) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Questions:  selected,
		PoolMedian: poolMedian,
		Timed:      timed,
	}
}

// Current returns the active question, or false when the session is over.
func (s *Session) Current() (question.Question, bool) {
	if s.Done() {
		return question.Question{}, false
	}
	return s.Questions[s.index], true
}

// Index returns the zero-based position of the active question.
func (s *Session) Index() int {
	return s.index
}

// Done reports whether the session has ended by exhaustion or quit.
func (s *Session) Done() bool {
	return s.quit || s.index >= len(s.Questions)
}

// Limit returns the advisory countdown for the active question.
func (s *Session) Limit() time.Duration {
	q, ok := s.Current()
	if !ok {
		return 0
	}
	return TimeLimit(q, s.PoolMedian)
}

// SubmitChoice grades a multiple-choice selection and advances.
func (s *Session) SubmitChoice(labels []string) Outcome {
	q, ok := s.Current()
	if !ok {
		return OutcomeSkipped
	}
	return s.record(GradeChoice(labels, q.CorrectLabels))
}

// SubmitFree grades free-form input and advances. ErrNotNumeric leaves the
// session on the same question so the caller can reprompt.
func (s *Session) SubmitFree(input string) (Outcome, error) {
	q, ok := s.Current()
	if !ok {
		return OutcomeSkipped, nil
	}
	correct, err := GradeFree(input, q.Forms())
	if err != nil {
		return OutcomeSkipped, err
	}
	return s.record(correct), nil
}

// Skip advances past the active question without scoring it.
func (s *Session) Skip() {
	if !s.Done() {
		s.index++
	}
}

// Quit ends the session immediately, preserving the score so far.
func (s *Session) Quit() {
	s.quit = true
}

// Summary reports the final score.
func (s *Session) Summary() Summary {
	return Summary{
		Correct:  s.correct,
		Answered: s.answered,
		Total:    len(s.Questions),
	}
}

func (s *Session) record(correct bool) Outcome {
	s.answered++
	s.index++
	if correct {
		s.correct++
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}
