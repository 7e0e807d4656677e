package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/madiyar-dev/capitals-quiz-bot/internal/config"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/delivery/telegram"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/logger"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/repository"
	"github.com/madiyar-dev/capitals-quiz-bot/internal/storage"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	// An empty or missing bank must stop the process before anything is
	// rendered to a chat.
	bank, err := repository.LoadQuestionBank(cfg.QuestionsJSONPath)
	if err != nil {
		zl.Fatal("failed to load question bank",
			zap.String("path", cfg.QuestionsJSONPath),
			zap.Error(err),
		)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Show the welcome screen",
		},
		{
			Command:     "play",
			Description: "Start a new quiz",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized",
		zap.String("account", bot.Self.UserName),
		zap.Int("questions", bank.Len()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := telegram.NewHandler(bot, zl, bank, storage.NewRuns())
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
