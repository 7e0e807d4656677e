package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/domain/entities"
)

var (
	ErrEmptyBank  = errors.New("question bank is empty")
	ErrOutOfRange = errors.New("question index out of range")
)

// QuestionBank is an ordered, immutable collection of question/answer pairs.
type QuestionBank struct {
	pairs []entities.QuestionAnswer
}

// NewQuestionBank builds a bank from the given pairs. The input slice is
// copied, so the caller mutating it afterwards does not affect the bank.
// An empty list is a configuration error, not a playable bank.
func NewQuestionBank(pairs []entities.QuestionAnswer) (*QuestionBank, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyBank
	}

	copied := make([]entities.QuestionAnswer, len(pairs))
	copy(copied, pairs)

	return &QuestionBank{pairs: copied}, nil
}

// LoadQuestionBank reads question/answer pairs from a JSON asset file.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Questions []entities.QuestionAnswer `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	return NewQuestionBank(wrapper.Questions)
}

// Len returns the number of questions in the bank.
func (b *QuestionBank) Len() int {
	return len(b.pairs)
}

// Get retrieves the pair at the given zero-based index.
// Returns ErrOutOfRange if the index is outside [0, Len).
func (b *QuestionBank) Get(index int) (entities.QuestionAnswer, error) {
	if index < 0 || index >= len(b.pairs) {
		return entities.QuestionAnswer{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	return b.pairs[index], nil
}
