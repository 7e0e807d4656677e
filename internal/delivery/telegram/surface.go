package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

// ChatSurface renders quiz screens into a single Telegram chat. Each render
// command maps to exactly one outgoing message.
type ChatSurface struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewChatSurface creates a surface bound to one chat.
func NewChatSurface(bot *tgbotapi.BotAPI, chatID int64) *ChatSurface {
	return &ChatSurface{
		bot:    bot,
		chatID: chatID,
	}
}

// Render translates a render command into a Telegram message with the
// matching inline keyboard.
func (s *ChatSurface) Render(_ context.Context, cmd service.RenderCommand) error {
	var msg tgbotapi.MessageConfig

	switch c := cmd.(type) {
	case service.ShowStart:
		msg = newMessage(s.chatID, formatStart(c.QuestionCount))
		msg.ReplyMarkup = buildStartKeyboard()

	case service.ShowQuestion:
		msg = newMessage(s.chatID, formatQuestion(c))

	case service.ShowResult:
		msg = newMessage(s.chatID, formatResult(c))
		msg.ReplyMarkup = buildResultKeyboard(c.Number == c.Total)

	case service.ShowScore:
		msg = newMessage(s.chatID, formatScore(c))
		msg.ReplyMarkup = buildScoreKeyboard()

	default:
		return fmt.Errorf("unknown render command %T", cmd)
	}

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", s.chatID, err)
	}

	return nil
}
