package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/telegram/handlers"
	"github.com/mindwell/assessment-backend/internal/telegram/middleware"
)

// Bot runs the Telegram long-polling loop and pushes each update
// through the middleware chain into the handler.
type Bot struct {
	api         *tgbotapi.BotAPI
	cfg         *config.TelegramConfig
	handler     *handlers.Handler
	logger      *zap.Logger
	loggingMW   *middleware.LoggingMiddleware
	recoveryMW  *middleware.RecoveryMiddleware
	rateLimitMW *middleware.RateLimiterMiddleware
	updatesChan tgbotapi.UpdatesChannel
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// New creates a new Telegram bot
func New(cfg *config.TelegramConfig, handler *handlers.Handler, api *tgbotapi.BotAPI, logger *zap.Logger) *Bot {
	b := &Bot{
		api:      api,
		cfg:      cfg,
		handler:  handler,
		logger:   logger,
		stopChan: make(chan struct{}),
	}

	b.loggingMW = middleware.NewLoggingMiddleware(logger)
	b.recoveryMW = middleware.NewRecoveryMiddleware(logger, api)
	b.rateLimitMW = middleware.NewRateLimiterMiddleware(cfg.RateLimitPerMinute, logger, api)

	return b
}

// Start starts the bot
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot",
		zap.String("username", b.api.Self.UserName),
		zap.Int64("id", b.api.Self.ID),
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	b.updatesChan = b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)
	go b.processUpdates(ctx)

	b.logger.Info("telegram bot started")
	return nil
}

// Stop stops the bot gracefully with timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped")
	return nil
}

// processUpdates processes incoming updates
func (b *Bot) processUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update := <-b.updatesChan:
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdateWithMiddleware(ctx, u)
			}(update)
		}
	}
}

// handleUpdateWithMiddleware processes update through the middleware chain
func (b *Bot) handleUpdateWithMiddleware(ctx context.Context, update tgbotapi.Update) {
	b.rateLimitMW.Handle(update, func(u tgbotapi.Update) {
		b.loggingMW.Handle(u, func(u2 tgbotapi.Update) {
			b.recoveryMW.Handle(u2, func(u3 tgbotapi.Update) {
				b.handleUpdate(ctx, u3)
			})
		})
	})
}

// handleUpdate routes an update to the handler
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handler.HandleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message != nil && update.Message.IsCommand() {
		b.handler.HandleCommand(ctx, update.Message)
		return
	}
}
