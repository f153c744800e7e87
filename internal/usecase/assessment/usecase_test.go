package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/config"
	"github.com/mindwell/assessment-backend/internal/entity"
	pkgRetry "github.com/mindwell/assessment-backend/internal/pkg/retry"
	"github.com/mindwell/assessment-backend/internal/pkg/validator"
)

// MockRepository is a mock type for the AssessmentRepository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Add(ctx context.Context, input entity.AssessmentRecordInput) (*entity.AssessmentRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AssessmentRecord), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]*entity.AssessmentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AssessmentRecord), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*entity.AssessmentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AssessmentRecord), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAlerts is a mock type for the AlertConnector interface
type MockAlerts struct {
	mock.Mock
}

func (m *MockAlerts) SendAlert(ctx context.Context, record *entity.AssessmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		IntegratedDurationSeconds: 900,
		SingleDurationSeconds:     300,
		TTL:                       time.Hour,
		CleanupInterval:           time.Hour,
		PersistRetry: pkgRetry.RetryConfig{
			Attempts: 2,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
	}
}

func newTestUsecase(repo *MockRepository, alerts *MockAlerts) *AssessmentUsecase {
	return NewUsecase(repo, alerts, validator.New(), testConfig(), func() float64 { return 0.5 }, zap.NewNop())
}

// runThrough answers every remaining question with the given value.
func runThrough(t *testing.T, uc *AssessmentUsecase, sessionID string, value int) {
	t.Helper()

	ctx := context.Background()
	for {
		session, err := uc.GetSession(ctx, sessionID)
		require.NoError(t, err)
		if session.Question == nil {
			return
		}
		v := value
		_, err = uc.SubmitAnswer(ctx, sessionID, &entity.SubmitAnswerRequest{Value: &v})
		require.NoError(t, err)
		_, err = uc.Advance(ctx, sessionID)
		require.NoError(t, err)
	}
}

func waitForResult(t *testing.T, uc *AssessmentUsecase, sessionID string) *entity.AssessmentRecord {
	t.Helper()

	ctx := context.Background()
	var record *entity.AssessmentRecord
	require.Eventually(t, func() bool {
		var err error
		record, err = uc.Result(ctx, sessionID)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond)
	return record
}

func TestStartSession(t *testing.T) {
	uc := newTestUsecase(new(MockRepository), new(MockAlerts))
	ctx := context.Background()

	t.Run("rejects missing mode", func(t *testing.T) {
		_, err := uc.StartSession(ctx, &entity.StartSessionRequest{})
		assert.ErrorIs(t, err, entity.ErrMissingField)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: "MMPI"})
		assert.Error(t, err)
	})

	t.Run("starts an integrated session on the first question", func(t *testing.T) {
		session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModeIntegrated})
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID)
		assert.Equal(t, entity.PhasePHQ9, session.Phase)
		assert.True(t, session.TimerRunning)
		require.NotNil(t, session.Question)
		assert.Equal(t, 0, session.Question.Index)
		assert.Equal(t, 9, session.Question.Total)
		assert.False(t, session.Question.Answered)
	})
}

func TestCompletedSessionPersistsExactlyOnce(t *testing.T) {
	repo := new(MockRepository)
	alerts := new(MockAlerts)
	uc := newTestUsecase(repo, alerts)
	ctx := context.Background()

	stored := &entity.AssessmentRecord{ID: 7}
	repo.On("Add", mock.Anything, mock.MatchedBy(func(input entity.AssessmentRecordInput) bool {
		stored.AssessmentRecordInput = input
		return input.Type == entity.ModeGAD7 &&
			input.CompositeScore == 100 &&
			input.RiskLevel == entity.RiskLow &&
			!input.SafetyFlag
	})).Return(stored, nil).Once()

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModeGAD7})
	require.NoError(t, err)

	runThrough(t, uc, session.ID, 0)
	record := waitForResult(t, uc, session.ID)

	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, 0, record.SubScores[entity.SubScoreKey(entity.InstrumentGAD7, entity.SubscaleAnxiety)])
	assert.Equal(t, entity.TrendImproving, record.Trend.Trend)
	assert.InDelta(t, 0.80, record.Trend.Confidence, 1e-9)

	repo.AssertExpectations(t)
	alerts.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything)
}

func TestPersistenceFailureStillYieldsResults(t *testing.T) {
	repo := new(MockRepository)
	alerts := new(MockAlerts)
	uc := newTestUsecase(repo, alerts)
	ctx := context.Background()

	repo.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModeGAD7})
	require.NoError(t, err)

	runThrough(t, uc, session.ID, 1)
	record := waitForResult(t, uc, session.ID)

	// The local record backs the results view; no ID was ever assigned.
	assert.Equal(t, int64(0), record.ID)
	assert.Equal(t, 7, record.SubScores[entity.SubScoreKey(entity.InstrumentGAD7, entity.SubscaleAnxiety)])

	repo.AssertNumberOfCalls(t, "Add", 2)
}

func TestSafetyFlagTriggersAlert(t *testing.T) {
	repo := new(MockRepository)
	alerts := new(MockAlerts)
	uc := newTestUsecase(repo, alerts)
	ctx := context.Background()

	repo.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("down"))
	alertCh := make(chan *entity.AssessmentRecord, 1)
	alerts.On("SendAlert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		alertCh <- args.Get(1).(*entity.AssessmentRecord)
	}).Return(nil).Once()

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModePHQ9})
	require.NoError(t, err)

	// Zero everywhere except the self-harm item.
	for i := 0; i < 9; i++ {
		value := 0
		if i == catalog.PHQ9SelfHarmIndex {
			value = 2
		}
		_, err = uc.SubmitAnswer(ctx, session.ID, &entity.SubmitAnswerRequest{Value: &value})
		require.NoError(t, err)
		_, err = uc.Advance(ctx, session.ID)
		require.NoError(t, err)
	}

	record := waitForResult(t, uc, session.ID)
	assert.True(t, record.SafetyFlag)
	require.NotEmpty(t, record.Recommendations)

	select {
	case alerted := <-alertCh:
		assert.True(t, alerted.SafetyFlag)
	case <-time.After(2 * time.Second):
		t.Fatal("no alert sent")
	}
	alerts.AssertExpectations(t)
}

func TestExitSessionDiscardsWithoutPersisting(t *testing.T) {
	repo := new(MockRepository)
	uc := newTestUsecase(repo, new(MockAlerts))
	ctx := context.Background()

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModeDASS21})
	require.NoError(t, err)

	value := 2
	_, err = uc.SubmitAnswer(ctx, session.ID, &entity.SubmitAnswerRequest{Value: &value})
	require.NoError(t, err)

	require.NoError(t, uc.ExitSession(ctx, session.ID))

	_, err = uc.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestBackIsNoOpInIntegratedMode(t *testing.T) {
	uc := newTestUsecase(new(MockRepository), new(MockAlerts))
	ctx := context.Background()

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModeIntegrated})
	require.NoError(t, err)

	value := 1
	_, err = uc.SubmitAnswer(ctx, session.ID, &entity.SubmitAnswerRequest{Value: &value})
	require.NoError(t, err)
	_, err = uc.Advance(ctx, session.ID)
	require.NoError(t, err)

	session, err = uc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Question.Index)
}

func TestResultBeforeCompletion(t *testing.T) {
	uc := newTestUsecase(new(MockRepository), new(MockAlerts))
	ctx := context.Background()

	session, err := uc.StartSession(ctx, &entity.StartSessionRequest{Mode: entity.ModePHQ9})
	require.NoError(t, err)

	_, err = uc.Result(ctx, session.ID)
	assert.ErrorIs(t, err, entity.ErrResultNotReady)
}
