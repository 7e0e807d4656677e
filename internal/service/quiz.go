package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/domain/entities"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/repository"
)

var ErrInvalidTransition = errors.New("invalid quiz transition")

// Phase is the state of the quiz machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingAnswer
	PhaseShowingResult
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAnswer:
		return "awaiting_answer"
	case PhaseShowingResult:
		return "showing_result"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// QuestionBank is the read side of the quiz data.
type QuestionBank interface {
	Len() int
	Get(index int) (entities.QuestionAnswer, error)
}

// Quiz sequences a single chat's playthrough: greeting, questions one at a
// time, a result screen after every submission, and a final score screen.
// It owns one run at a time and issues exactly one render command per
// transition. All methods must be called from a single goroutine.
type Quiz struct {
	bank    QuestionBank
	surface Surface

	phase Phase
	run   *entities.Run
}

// NewQuiz creates a quiz in the idle phase over the given bank.
func NewQuiz(bank QuestionBank, surface Surface) *Quiz {
	return &Quiz{
		bank:    bank,
		surface: surface,
		phase:   PhaseIdle,
		run:     entities.NewRun(),
	}
}

// Phase returns the current machine phase.
func (q *Quiz) Phase() Phase {
	return q.phase
}

// Run returns a snapshot of the current run state.
func (q *Quiz) Run() entities.Run {
	return *q.run
}

// Greet shows the start screen with the question count and play prompt.
// Only valid outside an active run.
func (q *Quiz) Greet(ctx context.Context) error {
	if q.phase != PhaseIdle && q.phase != PhaseFinished {
		return fmt.Errorf("%w: greet from %s", ErrInvalidTransition, q.phase)
	}

	return q.surface.Render(ctx, ShowStart{QuestionCount: q.bank.Len()})
}

// Start begins a new run from the first question. Valid from the idle and
// finished phases; starting again after a finished run resets the score.
func (q *Quiz) Start(ctx context.Context) error {
	if q.phase != PhaseIdle && q.phase != PhaseFinished {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, q.phase)
	}

	if q.bank.Len() == 0 {
		return repository.ErrEmptyBank
	}

	q.run = entities.NewRun()
	q.phase = PhaseAwaitingAnswer

	return q.renderQuestion(ctx)
}

// Submit grades a raw answer for the current question. The submission is
// trimmed and compared case-insensitively with the stored answer; the
// stored answer itself must already be clean and is not trimmed. The final
// question is graded like any other one: the score screen appears only on
// the next Advance, never straight from a submission.
func (q *Quiz) Submit(ctx context.Context, raw string) error {
	if q.phase != PhaseAwaitingAnswer {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, q.phase)
	}

	qa, err := q.bank.Get(q.run.CurrentIndex)
	if err != nil {
		return fmt.Errorf("get question %d: %w", q.run.CurrentIndex, err)
	}

	correct := grade(raw, qa.Answer)
	if correct {
		q.run.Score++
	}
	q.run.CurrentIndex++
	q.phase = PhaseShowingResult

	return q.surface.Render(ctx, ShowResult{
		Number:   q.run.CurrentIndex,
		Total:    q.bank.Len(),
		Correct:  correct,
		Expected: qa.Answer,
	})
}

// Advance moves past a result screen: to the next question, or to the
// final score once every question has been answered.
func (q *Quiz) Advance(ctx context.Context) error {
	if q.phase != PhaseShowingResult {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, q.phase)
	}

	if q.run.CurrentIndex < q.bank.Len() {
		q.phase = PhaseAwaitingAnswer
		return q.renderQuestion(ctx)
	}

	q.phase = PhaseFinished

	return q.surface.Render(ctx, ShowScore{
		Score: q.run.Score,
		Total: q.bank.Len(),
	})
}

func (q *Quiz) renderQuestion(ctx context.Context) error {
	qa, err := q.bank.Get(q.run.CurrentIndex)
	if err != nil {
		return fmt.Errorf("get question %d: %w", q.run.CurrentIndex, err)
	}

	return q.surface.Render(ctx, ShowQuestion{
		Number: q.run.CurrentIndex + 1,
		Total:  q.bank.Len(),
		Text:   qa.Question,
	})
}

// grade checks a submission against the stored answer: surrounding
// whitespace on the submission is ignored and the comparison is
// case-insensitive. An empty submission is an ordinary miss.
func grade(submission, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(submission), expected)
}
