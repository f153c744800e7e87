package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/entity"
	"github.com/mindwell/assessment-backend/internal/telegram/keyboard"
	"github.com/mindwell/assessment-backend/internal/telegram/render"
	"github.com/mindwell/assessment-backend/internal/telegram/state"
)

// Handler routes Telegram commands and callbacks to the assessment
// use case. One handler instance serves all chats.
type Handler struct {
	api      *tgbotapi.BotAPI
	states   *state.Manager
	usecase  AssessmentUsecase
	keyboard *keyboard.Builder
	logger   *zap.Logger
}

// NewHandler creates the bot update handler
func NewHandler(
	api *tgbotapi.BotAPI,
	states *state.Manager,
	usecase AssessmentUsecase,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		api:      api,
		states:   states,
		usecase:  usecase,
		keyboard: keyboard.NewBuilder(),
		logger:   logger,
	}
}

// send posts a new message and remembers its ID for in-place edits.
func (h *Handler) send(ctx context.Context, st *state.ChatState, chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	sent, err := h.api.Send(msg)
	if err != nil {
		ctxzap.Error(ctx, "failed to send telegram message", zap.Error(err), zap.Int64("chat_id", chatID))
		return
	}

	if st != nil {
		if err := h.states.SetLastMessage(ctx, st, sent.MessageID); err != nil {
			ctxzap.Warn(ctx, "failed to remember message id", zap.Error(err))
		}
	}
}

// edit updates the last bot message in place, falling back to a fresh
// message when there is nothing to edit.
func (h *Handler) edit(ctx context.Context, st *state.ChatState, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	if st == nil || st.LastMessageID == 0 {
		if st != nil {
			h.send(ctx, st, st.ChatID, text, markup)
		}
		return
	}

	edit := tgbotapi.NewEditMessageText(st.ChatID, st.LastMessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		edit.ReplyMarkup = markup
	}

	if _, err := h.api.Send(edit); err != nil {
		ctxzap.Warn(ctx, "failed to edit telegram message", zap.Error(err))
		h.send(ctx, st, st.ChatID, text, markup)
	}
}

// renderSession shows the session in whatever phase it is in.
func (h *Handler) renderSession(ctx context.Context, st *state.ChatState, session *entity.SessionDTO) {
	switch session.Phase {
	case entity.PhaseProcessing:
		markup := h.keyboard.ProcessingKeyboard()
		h.edit(ctx, st, render.Processing(session), &markup)
	case entity.PhaseResults:
		h.showResults(ctx, st, session.ID)
	default:
		h.renderQuestion(ctx, st, session)
	}
}

func (h *Handler) renderQuestion(ctx context.Context, st *state.ChatState, session *entity.SessionDTO) {
	q := session.Question
	if q == nil {
		h.edit(ctx, st, render.ErrGeneric, nil)
		return
	}

	answer := -1
	if q.Answer != nil {
		answer = *q.Answer
	}
	allowBack := session.Mode != entity.ModeIntegrated && q.Index > 0

	markup := h.keyboard.QuestionKeyboard(q.Options, q.Answered, answer, allowBack)
	h.edit(ctx, st, render.Question(session), &markup)
}

func (h *Handler) showResults(ctx context.Context, st *state.ChatState, sessionID string) {
	record, err := h.usecase.Result(ctx, sessionID)
	if err != nil {
		ctxzap.Warn(ctx, "result not ready", zap.Error(err), zap.String("session_id", sessionID))
		markup := h.keyboard.ProcessingKeyboard()
		h.edit(ctx, st, render.MsgResultNotReady, &markup)
		return
	}

	// Releases the live session; the record is already stored.
	if err := h.usecase.ExitSession(ctx, sessionID); err != nil {
		ctxzap.Warn(ctx, "failed to release finished session", zap.Error(err))
	}
	if err := h.states.Clear(ctx, st.UserID); err != nil {
		ctxzap.Warn(ctx, "failed to clear chat state", zap.Error(err))
	}

	markup := h.keyboard.ResultsKeyboard()
	h.send(ctx, nil, st.ChatID, render.Results(record), &markup)
}
