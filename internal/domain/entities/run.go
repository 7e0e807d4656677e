package entities

import "github.com/google/uuid"

// Run holds the mutable state of a single quiz playthrough.
// CurrentIndex counts the questions answered so far, so it equals the bank
// length once the last question has been graded. At every point
// 0 <= Score <= CurrentIndex.
type Run struct {
	ID           uuid.UUID // run identifier, used for log correlation
	CurrentIndex int       // number of questions answered so far
	Score        int       // number of correct answers so far
}

// NewRun creates a fresh run with a zero score, positioned at the first question.
func NewRun() *Run {
	return &Run{ID: uuid.New()}
}
