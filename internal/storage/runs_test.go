package storage

import (
	"testing"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

func TestRunsGetOrCreate(t *testing.T) {
	runs := NewRuns()

	created := 0
	factory := func() *service.Quiz {
		created++
		return &service.Quiz{}
	}

	first := runs.GetOrCreate(1, factory)
	second := runs.GetOrCreate(1, factory)

	if first != second {
		t.Error("GetOrCreate returned different instances for the same chat")
	}
	if created != 1 {
		t.Errorf("factory called %d times, want 1", created)
	}

	other := runs.GetOrCreate(2, factory)
	if other == first {
		t.Error("different chats share a quiz instance")
	}
}

func TestRunsGetAndDelete(t *testing.T) {
	runs := NewRuns()

	if _, ok := runs.Get(1); ok {
		t.Error("Get reported a quiz for an unknown chat")
	}

	q := runs.GetOrCreate(1, func() *service.Quiz { return &service.Quiz{} })
	if got, ok := runs.Get(1); !ok || got != q {
		t.Error("Get did not return the stored quiz")
	}

	runs.Delete(1)
	if _, ok := runs.Get(1); ok {
		t.Error("quiz still present after Delete")
	}
}
