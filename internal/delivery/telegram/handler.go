package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/storage"
)

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	bank   service.QuestionBank
	runs   *storage.Runs
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	bank service.QuestionBank,
	runs *storage.Runs,
) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		bank:   bank,
		runs:   runs,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.greetHandler())(ctx, chatID)

		case "play":
			_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

		case "help":
			h.send(newPlainMessage(chatID, msgHelp))

		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	// Any non-command text is an answer submission.
	_ = h.withErrorHandling(h.submitHandler(update.Message.Text))(ctx, chatID)
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)
	if data.Action != actionQuiz || len(data.Params) == 0 {
		return
	}

	chatID := cb.Message.Chat.ID

	switch data.Params[0] {
	case quizStart:
		_ = h.withErrorHandling(h.startHandler())(ctx, chatID)
	case quizNext:
		_ = h.withErrorHandling(h.advanceHandler())(ctx, chatID)
	default:
		return
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("failed to answer callback", zap.Error(err))
	}
}

// quizFor returns the chat's quiz, creating one over a fresh chat surface
// on first contact.
func (h *Handler) quizFor(chatID int64) *service.Quiz {
	return h.runs.GetOrCreate(chatID, func() *service.Quiz {
		return service.NewQuiz(h.bank, NewChatSurface(h.bot, chatID))
	})
}

func (h *Handler) greetHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q := h.quizFor(chatID)

		if err := q.Greet(ctx); err != nil {
			if errors.Is(err, service.ErrInvalidTransition) {
				h.send(newPlainMessage(chatID, msgQuizInProgress))
				return nil
			}
			return err
		}

		return nil
	}
}

func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q := h.quizFor(chatID)

		if err := q.Start(ctx); err != nil {
			if errors.Is(err, service.ErrInvalidTransition) {
				h.send(newPlainMessage(chatID, msgQuizInProgress))
				return nil
			}
			return err
		}

		h.logger.Info("run started",
			zap.Int64("chat_id", chatID),
			zap.String("run_id", q.Run().ID.String()),
		)

		return nil
	}
}

func (h *Handler) submitHandler(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q := h.quizFor(chatID)

		if err := q.Submit(ctx, text); err != nil {
			if errors.Is(err, service.ErrInvalidTransition) {
				h.send(newPlainMessage(chatID, msgNoActiveQuiz))
				return nil
			}
			return err
		}

		return nil
	}
}

func (h *Handler) advanceHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q := h.quizFor(chatID)

		if err := q.Advance(ctx); err != nil {
			return err
		}

		if q.Phase() == service.PhaseFinished {
			run := q.Run()
			h.logger.Info("run finished",
				zap.Int64("chat_id", chatID),
				zap.String("run_id", run.ID.String()),
				zap.Int("score", run.Score),
				zap.Int("total", h.bank.Len()),
			)
		}

		return nil
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newPlainMessage(chatID, err)
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
