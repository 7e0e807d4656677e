package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler failures and answers the chat with a
// generic error message. Out-of-phase events (stale buttons, text outside
// a question) are not failures: they are logged at debug level and the
// chat stays silent, so no extra render happens.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			if errors.Is(err, service.ErrInvalidTransition) {
				h.logger.Debug("out-of-phase event ignored",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
				return nil
			}

			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}
