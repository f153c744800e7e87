package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/telegram/bot"
	"github.com/mindwell/assessment-backend/internal/telegram/handlers"
	"github.com/mindwell/assessment-backend/internal/telegram/state"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(
	cfg *config.TelegramConfig,
	storage state.Storage,
	usecase handlers.AssessmentUsecase,
	logger *zap.Logger,
) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	api.Debug = false

	handler := handlers.NewHandler(api, state.NewManager(storage), usecase, logger)
	b := bot.New(cfg, handler, api, logger)

	logger.Info("telegram bot initialized")

	return b, nil
}
