package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/entity"
	"github.com/mindwell/assessment-backend/internal/pkg/logger"
	"github.com/mindwell/assessment-backend/internal/pkg/response"
)

type Handler struct {
	usecase AssessmentUsecase
}

func NewHandler(usecase AssessmentUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// StartSession handles POST /assessment-sessions - start a new session
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	var req entity.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "starting assessment session", zap.String("mode", string(req.Mode)))

	session, err := h.usecase.StartSession(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, session)
}

// GetSession handles GET /assessment-sessions/{id} - current session view
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetSession")

	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// SubmitAnswer handles POST /assessment-sessions/{id}/answer - answer the
// current question
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitAnswer")

	var req entity.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.usecase.SubmitAnswer(ctx, sessionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// Advance handles POST /assessment-sessions/{id}/advance - move to the
// next question or finish the session
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "Advance")

	session, err := h.usecase.Advance(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// Back handles POST /assessment-sessions/{id}/back - step back where the
// mode allows it
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "Back")

	session, err := h.usecase.Back(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, session)
}

// ExitSession handles POST /assessment-sessions/{id}/exit - leave the
// session, discarding it if it has not finished
func (h *Handler) ExitSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "ExitSession")

	if err := h.usecase.ExitSession(ctx, sessionID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, map[string]string{"message": "session exited"})
}

// GetResult handles GET /assessment-sessions/{id}/result - scored record
// of a finished session
func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetResult")

	record, err := h.usecase.Result(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, record)
}

// ListRecords handles GET /assessments - stored history, newest first
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListRecords")

	records, err := h.usecase.ListRecords(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, records)
}

// GetRecord handles GET /assessments/{id}
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetRecord")

	recordID, err := h.recordID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid record id")
		return
	}

	record, err := h.usecase.GetRecord(ctx, recordID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, record)
}

// DeleteRecord handles DELETE /assessments/{id}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteRecord")

	recordID, err := h.recordID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid record id")
		return
	}

	if err := h.usecase.DeleteRecord(ctx, recordID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.NoContent(w)
}

// ExportReport handles GET /assessments/{id}/report?format=markdown|pdf|docx
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportReport")

	recordID, err := h.recordID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid record id")
		return
	}

	format := entity.ReportFormat(r.URL.Query().Get("format"))
	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	data, contentType, filename, err := h.usecase.ExportReport(ctx, recordID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "report exported", zap.Int("size_bytes", len(data)))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) sessionContext(r *http.Request, action string) (ctx context.Context, sessionID string) {
	sessionID = chi.URLParam(r, "id")
	ctx = logger.WithSession(logger.WithAction(r.Context(), action), sessionID)
	return ctx, sessionID
}

func (h *Handler) recordID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Error(ctx, "request failed", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrSessionNotFound) || errors.Is(err, entity.ErrRecordNotFound):
		response.Error(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) ||
		errors.Is(err, entity.ErrInvalidAnswer) || errors.Is(err, entity.ErrUnknownInstrument) ||
		errors.Is(err, entity.ErrUnsupportedFormat):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrSessionFinished) || errors.Is(err, entity.ErrWrongPhase) ||
		errors.Is(err, entity.ErrAnswerRequired) || errors.Is(err, entity.ErrBackNotAllowed) ||
		errors.Is(err, entity.ErrResultNotReady):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
