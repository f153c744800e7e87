package handlers

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/entity"
	"github.com/mindwell/assessment-backend/internal/telegram/keyboard"
	"github.com/mindwell/assessment-backend/internal/telegram/render"
	"github.com/mindwell/assessment-backend/internal/telegram/state"
)

// HandleCallback processes inline keyboard presses.
func (h *Handler) HandleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	ctx = ctxzapWith(ctx, query)

	// Acknowledge the press so the client stops its spinner.
	if _, err := h.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		ctxzap.Debug(ctx, "failed to answer callback query", zap.Error(err))
	}

	st, err := h.states.Get(ctx, query.From.ID)
	if err != nil {
		ctxzap.Error(ctx, "failed to get chat state", zap.Error(err))
		return
	}
	if st == nil {
		h.send(ctx, nil, query.Message.Chat.ID, render.MsgNoActiveSession, nil)
		return
	}

	data := query.Data

	if mode, ok := keyboard.ParseMode(data); ok {
		h.handleModeSelection(ctx, st, mode)
		return
	}

	if value, ok := keyboard.ParseAnswer(data); ok {
		h.handleAnswer(ctx, st, value)
		return
	}

	switch data {
	case keyboard.CallbackNext:
		h.handleNext(ctx, st)
	case keyboard.CallbackBack:
		h.handleBack(ctx, st)
	case keyboard.CallbackExit:
		markup := h.keyboard.ExitConfirmKeyboard()
		h.edit(ctx, st, render.MsgExitConfirm, &markup)
	case keyboard.CallbackExitConfirm:
		h.handleExitConfirm(ctx, st)
	case keyboard.CallbackExitKeep:
		h.refresh(ctx, st)
	case keyboard.CallbackResult:
		h.showResults(ctx, st, st.SessionID)
	case keyboard.CallbackNewSession:
		st, err = h.states.Bind(ctx, st.UserID, st.ChatID, "")
		if err != nil {
			ctxzap.Error(ctx, "failed to bind chat state", zap.Error(err))
			return
		}
		markup := h.keyboard.ModeSelectionKeyboard()
		h.send(ctx, st, st.ChatID, render.MsgWelcome, &markup)
	default:
		ctxzap.Warn(ctx, "unknown callback data", zap.String("data", data))
	}
}

func (h *Handler) handleModeSelection(ctx context.Context, st *state.ChatState, mode entity.SessionMode) {
	session, err := h.usecase.StartSession(ctx, &entity.StartSessionRequest{Mode: mode})
	if err != nil {
		ctxzap.Error(ctx, "failed to start session", zap.Error(err))
		h.edit(ctx, st, render.ErrGeneric, nil)
		return
	}

	st, err = h.states.Bind(ctx, st.UserID, st.ChatID, session.ID)
	if err != nil {
		ctxzap.Error(ctx, "failed to bind session", zap.Error(err))
		return
	}

	h.renderSession(ctx, st, session)
}

func (h *Handler) handleAnswer(ctx context.Context, st *state.ChatState, value int) {
	if st.SessionID == "" {
		h.send(ctx, nil, st.ChatID, render.MsgNoActiveSession, nil)
		return
	}

	session, err := h.usecase.SubmitAnswer(ctx, st.SessionID, &entity.SubmitAnswerRequest{Value: &value})
	if err != nil {
		h.handleSessionError(ctx, st, err)
		return
	}

	h.renderSession(ctx, st, session)
}

func (h *Handler) handleNext(ctx context.Context, st *state.ChatState) {
	if st.SessionID == "" {
		h.send(ctx, nil, st.ChatID, render.MsgNoActiveSession, nil)
		return
	}

	session, err := h.usecase.Advance(ctx, st.SessionID)
	if err != nil {
		h.handleSessionError(ctx, st, err)
		return
	}

	h.renderSession(ctx, st, session)
}

func (h *Handler) handleBack(ctx context.Context, st *state.ChatState) {
	if st.SessionID == "" {
		h.send(ctx, nil, st.ChatID, render.MsgNoActiveSession, nil)
		return
	}

	session, err := h.usecase.Back(ctx, st.SessionID)
	if err != nil {
		h.handleSessionError(ctx, st, err)
		return
	}

	h.renderSession(ctx, st, session)
}

func (h *Handler) handleExitConfirm(ctx context.Context, st *state.ChatState) {
	if st.SessionID != "" {
		if err := h.usecase.ExitSession(ctx, st.SessionID); err != nil {
			ctxzap.Warn(ctx, "failed to exit session", zap.Error(err))
		}
	}
	if err := h.states.Clear(ctx, st.UserID); err != nil {
		ctxzap.Warn(ctx, "failed to clear chat state", zap.Error(err))
	}

	h.edit(ctx, st, render.MsgSessionExited, nil)
}

// refresh re-renders the current session view, e.g. after an exit was
// declined or the timer forced submission under the user's feet.
func (h *Handler) refresh(ctx context.Context, st *state.ChatState) {
	if st.SessionID == "" {
		h.send(ctx, nil, st.ChatID, render.MsgNoActiveSession, nil)
		return
	}

	session, err := h.usecase.GetSession(ctx, st.SessionID)
	if err != nil {
		h.handleSessionError(ctx, st, err)
		return
	}

	h.renderSession(ctx, st, session)
}

func (h *Handler) handleSessionError(ctx context.Context, st *state.ChatState, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		h.send(ctx, nil, st.ChatID, render.MsgNoActiveSession, nil)
	case errors.Is(err, entity.ErrWrongPhase), errors.Is(err, entity.ErrSessionFinished):
		// The countdown likely forced submission; show where the
		// session actually is now.
		ctxzap.Info(ctx, "session moved on, refreshing view", zap.Error(err))
		h.refresh(ctx, st)
	case errors.Is(err, entity.ErrAnswerRequired):
		h.refresh(ctx, st)
	default:
		ctxzap.Error(ctx, "session operation failed", zap.Error(err))
		h.edit(ctx, st, render.ErrGeneric, nil)
	}
}

func ctxzapWith(ctx context.Context, query *tgbotapi.CallbackQuery) context.Context {
	logger := ctxzap.Extract(ctx).With(
		zap.Int64("user_id", query.From.ID),
		zap.String("callback", query.Data),
	)
	return ctxzap.ToContext(ctx, logger)
}
