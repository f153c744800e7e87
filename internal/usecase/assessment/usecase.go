package assessment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/analysis"
	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/entity"
	"github.com/mindwell/assessment-backend/internal/pkg/formatter"
	"github.com/mindwell/assessment-backend/internal/pkg/validator"
	"github.com/mindwell/assessment-backend/internal/repository"
	"github.com/mindwell/assessment-backend/internal/scoring"
	"github.com/mindwell/assessment-backend/internal/session"
)

const persistTimeout = 30 * time.Second

// liveSession is one in-flight assessment. The controller owns all
// navigation state; the record fields are written once, after submission.
type liveSession struct {
	id         string
	controller *session.Controller
	createdAt  time.Time

	mu        sync.Mutex
	record    *entity.AssessmentRecord
	persisted bool
}

func (ls *liveSession) setRecord(rec *entity.AssessmentRecord, persisted bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.record = rec
	ls.persisted = persisted
}

func (ls *liveSession) getRecord() (*entity.AssessmentRecord, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.record, ls.persisted
}

// AssessmentUsecase implements assessment business logic: live session
// orchestration, scoring and analysis on submission, record persistence
// and report export.
type AssessmentUsecase struct {
	recordRepo repository.AssessmentRepository
	alerts     AlertConnector
	sessions   *gocache.Cache
	validator  *validator.Validator
	formatters *formatter.Factory
	cfg        config.SessionConfig
	rnd        scoring.Source
	logger     *zap.Logger
}

// NewUsecase creates a new assessment use case. rnd feeds the trend
// confidence jitter; pass a fixed source in tests.
func NewUsecase(
	recordRepo repository.AssessmentRepository,
	alerts AlertConnector,
	validator *validator.Validator,
	cfg config.SessionConfig,
	rnd scoring.Source,
	logger *zap.Logger,
) *AssessmentUsecase {
	return &AssessmentUsecase{
		recordRepo: recordRepo,
		alerts:     alerts,
		sessions:   gocache.New(cfg.TTL, cfg.CleanupInterval),
		validator:  validator,
		formatters: formatter.NewFactory(),
		cfg:        cfg,
		rnd:        rnd,
		logger:     logger,
	}
}

// StartSession creates a live session for the requested mode and starts
// its countdown immediately.
func (uc *AssessmentUsecase) StartSession(ctx context.Context, req *entity.StartSessionRequest) (*entity.SessionDTO, error) {
	if err := uc.validator.ValidateStartSession(req); err != nil {
		return nil, err
	}

	instruments, err := catalog.ForMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("resolve instruments: %w", err)
	}

	live := &liveSession{
		id:        uuid.New().String(),
		createdAt: time.Now().UTC(),
	}
	live.controller = session.NewController(req.Mode, instruments, uc.durationFor(req.Mode), func(sub session.Submission) {
		uc.processSubmission(live, sub)
	})

	uc.sessions.Set(live.id, live, gocache.DefaultExpiration)

	if err := live.controller.Start(); err != nil {
		uc.sessions.Delete(live.id)
		return nil, fmt.Errorf("start session: %w", err)
	}

	ctxzap.AddFields(ctx, zap.String("session_id", live.id), zap.String("mode", string(req.Mode)))
	ctxzap.Info(ctx, "assessment session started")

	return sessionToDTO(live), nil
}

// GetSession returns the current view of a live session.
func (uc *AssessmentUsecase) GetSession(ctx context.Context, sessionID string) (*entity.SessionDTO, error) {
	live, err := uc.liveSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sessionToDTO(live), nil
}

// SubmitAnswer records the answer for the question currently shown.
// Re-answering the current question overwrites the previous value.
func (uc *AssessmentUsecase) SubmitAnswer(ctx context.Context, sessionID string, req *entity.SubmitAnswerRequest) (*entity.SessionDTO, error) {
	if err := uc.validator.ValidateSubmitAnswer(req); err != nil {
		return nil, err
	}

	live, err := uc.liveSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := live.controller.Answer(*req.Value); err != nil {
		return nil, err
	}
	uc.touch(live)
	return sessionToDTO(live), nil
}

// Advance moves to the next question, the next instrument, or into
// processing when the last question is answered. The current question
// must hold an answer.
func (uc *AssessmentUsecase) Advance(ctx context.Context, sessionID string) (*entity.SessionDTO, error) {
	live, err := uc.liveSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := live.controller.Advance(); err != nil {
		return nil, err
	}
	uc.touch(live)
	return sessionToDTO(live), nil
}

// Back steps to the previous question where the mode allows it. In the
// integrated mode it is accepted and changes nothing.
func (uc *AssessmentUsecase) Back(ctx context.Context, sessionID string) (*entity.SessionDTO, error) {
	live, err := uc.liveSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := live.controller.Back(); err != nil {
		return nil, err
	}
	uc.touch(live)
	return sessionToDTO(live), nil
}

// ExitSession ends a live session. From the results phase it simply
// discards the in-memory state; from any earlier phase it cancels the
// session, and nothing is scored or persisted.
func (uc *AssessmentUsecase) ExitSession(ctx context.Context, sessionID string) error {
	live, err := uc.liveSession(sessionID)
	if err != nil {
		return err
	}

	snap := live.controller.Snapshot()
	if snap.Phase != entity.PhaseResults {
		err := live.controller.Cancel()
		switch {
		case err == nil:
			ctxzap.Info(ctx, "assessment session canceled", zap.String("session_id", sessionID))
		case errors.Is(err, entity.ErrSessionFinished), errors.Is(err, entity.ErrWrongPhase):
			// Submission already left the controller; just drop the state.
		default:
			return err
		}
	}

	uc.sessions.Delete(sessionID)
	return nil
}

// Result returns the assessment record once the session has reached the
// results phase.
func (uc *AssessmentUsecase) Result(ctx context.Context, sessionID string) (*entity.AssessmentRecord, error) {
	live, err := uc.liveSession(sessionID)
	if err != nil {
		return nil, err
	}

	snap := live.controller.Snapshot()
	if snap.Phase != entity.PhaseResults {
		return nil, entity.ErrResultNotReady
	}

	record, _ := live.getRecord()
	if record == nil {
		return nil, entity.ErrResultNotReady
	}
	return record, nil
}

// ListRecords returns the stored assessment history, newest first.
func (uc *AssessmentUsecase) ListRecords(ctx context.Context) ([]*entity.AssessmentRecord, error) {
	records, err := uc.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// GetRecord returns one stored assessment record.
func (uc *AssessmentUsecase) GetRecord(ctx context.Context, recordID int64) (*entity.AssessmentRecord, error) {
	record, err := uc.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}

// DeleteRecord removes a stored assessment record.
func (uc *AssessmentUsecase) DeleteRecord(ctx context.Context, recordID int64) error {
	if err := uc.recordRepo.Remove(ctx, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// ExportReport renders a stored record in the requested format and
// returns the payload with its content type and a suggested file name.
func (uc *AssessmentUsecase) ExportReport(ctx context.Context, recordID int64, format entity.ReportFormat) ([]byte, string, string, error) {
	format, err := uc.validator.ValidateReportFormat(format)
	if err != nil {
		return nil, "", "", err
	}

	record, err := uc.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, "", "", fmt.Errorf("get record: %w", err)
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, "", "", err
	}

	data, err := f.Format(formatter.BuildReportText(record))
	if err != nil {
		return nil, "", "", fmt.Errorf("format report: %w", err)
	}

	filename := fmt.Sprintf("assessment-%d%s", record.ID, f.FileExtension())
	return data, f.ContentType(), filename, nil
}

// processSubmission scores the finished session, generates the analysis
// and hands the record to the repository. It runs once per session, on
// the controller's submission goroutine. Persistence failures are logged
// and swallowed so the client still gets its results.
func (uc *AssessmentUsecase) processSubmission(live *liveSession, sub session.Submission) {
	log := uc.logger.With(
		zap.String("session_id", live.id),
		zap.String("mode", string(sub.Mode)),
		zap.String("cause", string(sub.Cause)),
	)

	instruments, err := catalog.ForMode(sub.Mode)
	if err != nil {
		log.Error("resolve instruments on submission", zap.Error(err))
		return
	}

	scores := make([]*entity.ScoreResult, 0, len(instruments))
	for _, inst := range instruments {
		res, err := scoring.Score(inst, sub.Responses[inst.ID])
		if err != nil {
			log.Error("score instrument", zap.String("instrument", string(inst.ID)), zap.Error(err))
			return
		}
		scores = append(scores, res)
	}

	wellness := scoring.Composite(scores...)

	var risk entity.RiskLevel
	if sub.Mode == entity.ModeIntegrated {
		risk = scoring.CompositeRisk(wellness)
	} else {
		risk = scoring.InstrumentRisk(scores[0])
	}

	result := analysis.Generate(analysis.Input{
		Mode:      sub.Mode,
		Scores:    scores,
		Responses: sub.Responses,
		Wellness:  wellness,
		Risk:      risk,
	})

	subScores := make(map[string]int)
	for _, res := range scores {
		for sc, raw := range res.Raw {
			subScores[entity.SubScoreKey(res.InstrumentID, sc)] = raw
		}
	}

	now := time.Now().UTC()
	input := entity.AssessmentRecordInput{
		Type:            sub.Mode,
		Date:            now,
		CompositeScore:  wellness,
		RiskLevel:       risk,
		AnalysisText:    result.Narrative,
		Responses:       sub.Responses,
		SubScores:       subScores,
		Trend:           scoring.PredictTrend(wellness, uc.rnd),
		Recommendations: result.Recommendations,
		SafetyFlag:      result.SafetyFlag,
	}

	// The local copy backs Result even when the repository is down.
	local := &entity.AssessmentRecord{AssessmentRecordInput: input, CreatedAt: now}
	live.setRecord(local, false)

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	persisted, err := uc.persistRecord(ctx, input)
	if err != nil {
		log.Warn("persist assessment record", zap.Error(err))
	} else {
		live.setRecord(persisted, true)
		log.Info("assessment record persisted", zap.Int64("record_id", persisted.ID))
	}

	if result.SafetyFlag || risk == entity.RiskHigh {
		alertRecord := local
		if persisted != nil {
			alertRecord = persisted
		}
		if err := uc.alerts.SendAlert(ctx, alertRecord); err != nil {
			log.Warn("send alert", zap.Error(err))
		}
	}
}

func (uc *AssessmentUsecase) persistRecord(ctx context.Context, input entity.AssessmentRecordInput) (*entity.AssessmentRecord, error) {
	var record *entity.AssessmentRecord
	err := retry.Do(func() error {
		var addErr error
		record, addErr = uc.recordRepo.Add(ctx, input)
		return addErr
	}, append(uc.cfg.PersistRetry.ToRetryOptions(), retry.Context(ctx))...)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *AssessmentUsecase) liveSession(sessionID string) (*liveSession, error) {
	v, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return v.(*liveSession), nil
}

// touch resets the idle-eviction clock on client activity.
func (uc *AssessmentUsecase) touch(live *liveSession) {
	uc.sessions.Set(live.id, live, gocache.DefaultExpiration)
}

func (uc *AssessmentUsecase) durationFor(mode entity.SessionMode) int {
	if mode == entity.ModeIntegrated {
		return uc.cfg.IntegratedDurationSeconds
	}
	return uc.cfg.SingleDurationSeconds
}
