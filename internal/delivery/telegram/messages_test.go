package telegram

import (
	"strings"
	"testing"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

func TestFormatQuestionIncludesNumberingAndPrompt(t *testing.T) {
	text := formatQuestion(service.ShowQuestion{
		Number: 2,
		Total:  10,
		Text:   "What is the capital of Syria?",
	})

	if !strings.Contains(text, "Question 2/10") {
		t.Errorf("question header missing numbering: %q", text)
	}
	if !strings.Contains(text, "What is the capital of Syria") {
		t.Errorf("question prompt missing: %q", text)
	}
}

func TestFormatResult(t *testing.T) {
	correct := formatResult(service.ShowResult{Correct: true, Expected: "Damascus"})
	if strings.Contains(correct, "Damascus") {
		t.Errorf("correct result leaks the expected answer: %q", correct)
	}

	wrong := formatResult(service.ShowResult{Correct: false, Expected: "Damascus"})
	if !strings.Contains(wrong, "Damascus") {
		t.Errorf("wrong result does not show the expected answer: %q", wrong)
	}
}

func TestFormatScore(t *testing.T) {
	text := formatScore(service.ShowScore{Score: 3, Total: 10})
	if !strings.Contains(text, "3 out of 10") {
		t.Errorf("score text missing the result: %q", text)
	}
}

func TestFormatStartEscapesForMarkdownV2(t *testing.T) {
	// Sentence periods must arrive escaped, or Telegram rejects the message.
	text := formatStart(10)
	if !strings.Contains(text, "10") {
		t.Errorf("start text missing the question count: %q", text)
	}
	if strings.Contains(text, "ready.") {
		t.Errorf("unescaped MarkdownV2 period in: %q", text)
	}
}
