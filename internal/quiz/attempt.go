package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hmiyata/shindan/internal/errors"
)

// Screen is the view state of an attempt.
type Screen string

const (
	ScreenWelcome  Screen = "welcome"
	ScreenQuestion Screen = "question"
	ScreenResult   Screen = "result"
)

// LeadStatus tracks the lead-registration submission attached to an
// attempt. A failed submission is retriable and never touches quiz state.
type LeadStatus string

const (
	LeadIdle    LeadStatus = "idle"
	LeadPending LeadStatus = "pending"
	LeadSuccess LeadStatus = "success"
	LeadError   LeadStatus = "error"
)

// Result is the memoized outcome of a completed attempt.
type Result struct {
	Scores   ScoreMap `json:"scores"`
	Dominant Category `json:"dominant"`
	Content  Content  `json:"content"`
}

// Attempt is the state machine for one quiz run: welcome -> question
// (with index sub-progression and back-navigation) -> result. It owns
// the answer set for the duration of the run. Attempts are driven by one
// user action at a time; callers serialize access.
type Attempt struct {
	bank       *Bank
	rng        *rand.Rand
	screen     Screen
	questions  []Question
	current    int
	answers    AnswerSet
	result     *Result
	leadStatus LeadStatus
}

// AttemptOption configures a new Attempt.
type AttemptOption func(*Attempt)

// WithRand injects the randomness source used for shuffling.
func WithRand(rng *rand.Rand) AttemptOption {
	return func(a *Attempt) { a.rng = rng }
}

// NewAttempt creates an attempt on the welcome screen.
func NewAttempt(b *Bank, opts ...AttemptOption) *Attempt {
	a := &Attempt{
		bank:       b,
		screen:     ScreenWelcome,
		answers:    AnswerSet{},
		leadStatus: LeadIdle,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Start shuffles the bank, clears all answers and any prior result, and
// presents the first question.
func (a *Attempt) Start() {
	a.questions = Shuffle(a.bank.Questions, a.rng)
	a.current = 0
	a.answers = AnswerSet{}
	a.result = nil
	a.leadStatus = LeadIdle
	a.screen = ScreenQuestion
}

// Restart discards all prior answers and the result and begins a fresh
// run with a new shuffle.
func (a *Attempt) Restart() {
	a.Start()
}

// Answer records the value for the currently presented question,
// overwriting any answer recorded for it on an earlier pass. Answering
// the last question computes scores, classifies, resolves content, and
// moves to the result screen; otherwise the next question is presented.
// Calls outside the question screen, with an out-of-domain value, or for
// a question other than the presented one are rejected without touching
// state.
func (a *Attempt) Answer(questionID, value int) error {
	if a.screen != ScreenQuestion {
		return errors.NewInvalidStateError("answer", fmt.Sprintf("no question is being presented (screen=%s)", a.screen))
	}
	if value < MinAnswer || value > MaxAnswer {
		return errors.NewValidationError("value", fmt.Sprintf("must be between %d and %d, got %d", MinAnswer, MaxAnswer, value))
	}
	current := a.questions[a.current]
	if questionID != current.ID {
		return errors.NewValidationError("question_id", fmt.Sprintf("expected %d (the presented question), got %d", current.ID, questionID))
	}

	a.answers[current.ID] = value

	if a.current == len(a.questions)-1 {
		scores := Score(a.bank, a.answers)
		dominant := Classify(a.bank, scores)
		a.result = &Result{
			Scores:   scores,
			Dominant: dominant,
			Content:  a.bank.ContentFor(dominant),
		}
		a.screen = ScreenResult
		return nil
	}

	a.current++
	return nil
}

// Back returns to the previous question. The answer recorded for the
// question being returned to is kept, so the UI may pre-highlight it.
func (a *Attempt) Back() error {
	if a.screen != ScreenQuestion {
		return errors.NewInvalidStateError("back", fmt.Sprintf("not on the question screen (screen=%s)", a.screen))
	}
	if a.current == 0 {
		return errors.NewInvalidStateError("back", "already at the first question")
	}
	a.current--
	return nil
}

// Bank returns the quiz variant this attempt runs.
func (a *Attempt) Bank() *Bank {
	return a.bank
}

// Screen returns the current view state.
func (a *Attempt) Screen() Screen {
	return a.screen
}

// Progress returns the zero-based current index and the total question
// count. Only meaningful while on the question screen.
func (a *Attempt) Progress() (current, total int) {
	return a.current, len(a.questions)
}

// CurrentQuestion returns the presented question and the value recorded
// for it on an earlier pass (0 when unanswered). ok is false outside the
// question screen.
func (a *Attempt) CurrentQuestion() (q Question, prior int, ok bool) {
	if a.screen != ScreenQuestion {
		return Question{}, 0, false
	}
	q = a.questions[a.current]
	return q, a.answers[q.ID], true
}

// Questions returns a copy of the shuffled question order for this run.
func (a *Attempt) Questions() []Question {
	out := make([]Question, len(a.questions))
	copy(out, a.questions)
	return out
}

// Answers returns a copy of the recorded answer set.
func (a *Attempt) Answers() AnswerSet {
	out := make(AnswerSet, len(a.answers))
	for id, v := range a.answers {
		out[id] = v
	}
	return out
}

// Result returns the memoized result, or nil before the result screen.
func (a *Attempt) Result() *Result {
	return a.result
}

// LeadStatus returns the lead submission state for this attempt.
func (a *Attempt) LeadStatus() LeadStatus {
	return a.leadStatus
}

// SetLeadStatus updates the lead submission state for this attempt.
func (a *Attempt) SetLeadStatus(s LeadStatus) {
	a.leadStatus = s
}
