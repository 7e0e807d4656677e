package storage

import (
	"sync"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

// Runs provides in-memory storage of per-chat quizzes. Each chat owns
// exactly one quiz instance for the lifetime of the process.
type Runs struct {
	mu      sync.RWMutex
	quizzes map[int64]*service.Quiz
}

// NewRuns creates an empty run registry.
func NewRuns() *Runs {
	return &Runs{
		quizzes: make(map[int64]*service.Quiz),
	}
}

// GetOrCreate returns the quiz for a chat, creating it with create when
// the chat has none yet.
func (r *Runs) GetOrCreate(chatID int64, create func() *service.Quiz) *service.Quiz {
	r.mu.RLock()
	q, ok := r.quizzes[chatID]
	r.mu.RUnlock()
	if ok {
		return q
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if q, ok = r.quizzes[chatID]; ok {
		return q
	}

	q = create()
	r.quizzes[chatID] = q
	return q
}

// Get retrieves the quiz for a chat, if any.
func (r *Runs) Get(chatID int64) (*service.Quiz, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.quizzes[chatID]
	return q, ok
}

// Delete removes the quiz for a chat.
func (r *Runs) Delete(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quizzes, chatID)
}
