package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/telegram/render"
)

const historyLimit = 5

// HandleCommand processes bot commands.
func (h *Handler) HandleCommand(ctx context.Context, message *tgbotapi.Message) {
	ctxzap.Info(ctx, "telegram command",
		zap.String("command", message.Command()),
		zap.Int64("user_id", message.From.ID),
	)

	switch message.Command() {
	case "start":
		h.handleStart(ctx, message)
	case "cancel":
		h.handleCancel(ctx, message)
	case "history":
		h.handleHistory(ctx, message)
	case "help":
		h.send(ctx, nil, message.Chat.ID, render.MsgHelp, nil)
	default:
		h.send(ctx, nil, message.Chat.ID, render.MsgHelp, nil)
	}
}

func (h *Handler) handleStart(ctx context.Context, message *tgbotapi.Message) {
	// Discard any session the user abandoned mid-way.
	h.discardActiveSession(ctx, message.From.ID)

	st, err := h.states.Bind(ctx, message.From.ID, message.Chat.ID, "")
	if err != nil {
		ctxzap.Error(ctx, "failed to bind chat state", zap.Error(err))
		h.send(ctx, nil, message.Chat.ID, render.ErrGeneric, nil)
		return
	}

	markup := h.keyboard.ModeSelectionKeyboard()
	h.send(ctx, st, message.Chat.ID, render.MsgWelcome, &markup)
}

func (h *Handler) handleCancel(ctx context.Context, message *tgbotapi.Message) {
	st, err := h.states.Get(ctx, message.From.ID)
	if err != nil || st == nil || st.SessionID == "" {
		h.send(ctx, nil, message.Chat.ID, render.MsgNoActiveSession, nil)
		return
	}

	if err := h.usecase.ExitSession(ctx, st.SessionID); err != nil {
		ctxzap.Warn(ctx, "failed to exit session", zap.Error(err), zap.String("session_id", st.SessionID))
	}
	if err := h.states.Clear(ctx, message.From.ID); err != nil {
		ctxzap.Warn(ctx, "failed to clear chat state", zap.Error(err))
	}

	h.send(ctx, nil, message.Chat.ID, render.MsgSessionExited, nil)
}

func (h *Handler) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	records, err := h.usecase.ListRecords(ctx)
	if err != nil {
		ctxzap.Error(ctx, "failed to list records", zap.Error(err))
		h.send(ctx, nil, message.Chat.ID, render.ErrGeneric, nil)
		return
	}

	if len(records) == 0 {
		h.send(ctx, nil, message.Chat.ID, render.MsgHistoryEmpty, nil)
		return
	}

	if len(records) > historyLimit {
		records = records[:historyLimit]
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "🗂 *Recent assessments:*")
	for _, record := range records {
		lines = append(lines, render.HistoryEntry(record))
	}

	h.send(ctx, nil, message.Chat.ID, strings.Join(lines, "\n"), nil)
}

func (h *Handler) discardActiveSession(ctx context.Context, userID int64) {
	st, err := h.states.Get(ctx, userID)
	if err != nil || st == nil || st.SessionID == "" {
		return
	}
	if err := h.usecase.ExitSession(ctx, st.SessionID); err != nil {
		ctxzap.Debug(ctx, "failed to exit stale session", zap.Error(err), zap.String("session_id", st.SessionID))
	}
}
