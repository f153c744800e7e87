package handlers

import (
	"context"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// AssessmentUsecase is the slice of the assessment use case the bot needs.
type AssessmentUsecase interface {
	StartSession(ctx context.Context, req *entity.StartSessionRequest) (*entity.SessionDTO, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionDTO, error)
	SubmitAnswer(ctx context.Context, sessionID string, req *entity.SubmitAnswerRequest) (*entity.SessionDTO, error)
	Advance(ctx context.Context, sessionID string) (*entity.SessionDTO, error)
	Back(ctx context.Context, sessionID string) (*entity.SessionDTO, error)
	ExitSession(ctx context.Context, sessionID string) error
	Result(ctx context.Context, sessionID string) (*entity.AssessmentRecord, error)
	ListRecords(ctx context.Context) ([]*entity.AssessmentRecord, error)
}
