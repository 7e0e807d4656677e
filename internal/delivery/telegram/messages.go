// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgUnknownCommand = "Unknown command. Use /play to start the quiz or /help for the list of commands."
	msgQuizInProgress = "A quiz is already in progress. Type your answer, or press the button under the last question."
	msgNoActiveQuiz   = "No question is waiting for an answer right now. Press the button under the last message, or use /play to start a new quiz."
	msgHelp           = "I run a capitals quiz: I ask one question at a time, you type the answer.\n\n" +
		"/start — show the welcome screen\n" +
		"/play — start a new quiz\n" +
		"/help — show this message\n\n" +
		"Answers are checked ignoring letter case and surrounding spaces."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	return msg
}

// formatStart builds the welcome screen text (MarkdownV2 safe).
func formatStart(questionCount int) string {
	var sb strings.Builder

	sb.WriteString(bold("Capitals Quiz"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("I have %d questions about capital cities for you.", questionCount)))
	sb.WriteString("\n")
	sb.WriteString(md("I ask them one at a time — type your answer as a plain message."))
	sb.WriteString("\n\n")
	sb.WriteString(md("Press ▶️ Play when you are ready."))

	return sb.String()
}

// formatQuestion builds a question screen text.
func formatQuestion(cmd service.ShowQuestion) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold(fmt.Sprintf("❓ Question %d/%d", cmd.Number, cmd.Total)),
		md(cmd.Text),
	)
}

// formatResult builds a result screen text. On a miss the expected answer
// is shown so the user can learn it for the next run.
func formatResult(cmd service.ShowResult) string {
	if cmd.Correct {
		return bold("✅ Correct!")
	}

	return fmt.Sprintf(
		"%s\n%s %s",
		bold("❌ Wrong!"),
		md("The correct answer is:"),
		bold(cmd.Expected),
	)
}

// formatScore builds the final score screen text.
func formatScore(cmd service.ShowScore) string {
	return fmt.Sprintf(
		"%s\n\n%s",
		bold("🏁 Quiz finished!"),
		md(fmt.Sprintf("Your score: %d out of %d.", cmd.Score, cmd.Total)),
	)
}

// buildStartKeyboard builds the keyboard for the welcome screen.
func buildStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Play", buildQuizStartCallback()),
		),
	)
}

// buildResultKeyboard builds the keyboard for a result screen. The label
// depends on whether another question follows.
func buildResultKeyboard(last bool) tgbotapi.InlineKeyboardMarkup {
	label := "➡️ Next question"
	if last {
		label = "🏁 Show my score"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizNextCallback()),
		),
	)
}

// buildScoreKeyboard builds the keyboard for the final score screen.
func buildScoreKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", buildQuizStartCallback()),
		),
	)
}
