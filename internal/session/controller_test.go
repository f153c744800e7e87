package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
)

func newTestController(t *testing.T, mode entity.SessionMode, durationSeconds int, submit SubmitFunc) *Controller {
	t.Helper()

	instruments, err := catalog.ForMode(mode)
	require.NoError(t, err)
	return NewController(mode, instruments, durationSeconds, submit)
}

func answerAndAdvance(t *testing.T, c *Controller, value, times int) {
	t.Helper()

	for i := 0; i < times; i++ {
		require.NoError(t, c.Answer(value))
		require.NoError(t, c.Advance())
	}
}

func TestControllerStart(t *testing.T) {
	c := newTestController(t, entity.ModeIntegrated, 900, nil)

	snap := c.Snapshot()
	assert.Equal(t, entity.PhaseIntro, snap.Phase)
	assert.False(t, snap.TimerRunning)

	require.NoError(t, c.Start())

	snap = c.Snapshot()
	assert.Equal(t, entity.PhasePHQ9, snap.Phase)
	assert.Equal(t, 0, snap.QuestionIndex)
	assert.True(t, snap.TimerRunning)

	assert.ErrorIs(t, c.Start(), entity.ErrWrongPhase)
}

func TestControllerAnswer(t *testing.T) {
	c := newTestController(t, entity.ModeGAD7, 300, nil)

	t.Run("rejected before start", func(t *testing.T) {
		assert.ErrorIs(t, c.Answer(1), entity.ErrWrongPhase)
	})

	require.NoError(t, c.Start())

	t.Run("rejects values off the scale", func(t *testing.T) {
		assert.ErrorIs(t, c.Answer(-1), entity.ErrInvalidAnswer)
		assert.ErrorIs(t, c.Answer(4), entity.ErrInvalidAnswer)
	})

	t.Run("re-answering the current question overwrites", func(t *testing.T) {
		require.NoError(t, c.Answer(1))
		require.NoError(t, c.Answer(3))
		assert.Equal(t, 3, c.Snapshot().Answer)
	})
}

func TestControllerAdvanceGuard(t *testing.T) {
	c := newTestController(t, entity.ModeGAD7, 300, nil)
	require.NoError(t, c.Start())

	err := c.Advance()
	assert.ErrorIs(t, err, entity.ErrAnswerRequired)
	assert.Equal(t, 0, c.Snapshot().QuestionIndex)

	require.NoError(t, c.Answer(0))
	require.NoError(t, c.Advance())
	assert.Equal(t, 1, c.Snapshot().QuestionIndex)
}

func TestControllerIntegratedFlowIsForwardOnly(t *testing.T) {
	c := newTestController(t, entity.ModeIntegrated, 900, nil)
	require.NoError(t, c.Start())

	answerAndAdvance(t, c, 1, 3)
	require.Equal(t, 3, c.Snapshot().QuestionIndex)

	// Back is accepted but changes nothing.
	require.NoError(t, c.Back())
	assert.Equal(t, 3, c.Snapshot().QuestionIndex)
}

func TestControllerSingleModeBack(t *testing.T) {
	c := newTestController(t, entity.ModePHQ9, 300, nil)
	require.NoError(t, c.Start())

	answerAndAdvance(t, c, 2, 2)
	require.Equal(t, 2, c.Snapshot().QuestionIndex)

	require.NoError(t, c.Back())
	assert.Equal(t, 1, c.Snapshot().QuestionIndex)

	// Previous answer is still there.
	assert.Equal(t, 2, c.Snapshot().Answer)

	require.NoError(t, c.Back())
	require.NoError(t, c.Back()) // at the first question, stays put
	assert.Equal(t, 0, c.Snapshot().QuestionIndex)
}

func TestControllerInstrumentTransitions(t *testing.T) {
	c := newTestController(t, entity.ModeIntegrated, 900, func(Submission) {})
	require.NoError(t, c.Start())

	answerAndAdvance(t, c, 0, 9)
	assert.Equal(t, entity.PhaseDASS21, c.Snapshot().Phase)

	answerAndAdvance(t, c, 0, 21)
	assert.Equal(t, entity.PhaseGAD7, c.Snapshot().Phase)
}

func TestControllerCompletionSubmitsOnce(t *testing.T) {
	subs := make(chan Submission, 2)
	c := newTestController(t, entity.ModeGAD7, 300, func(s Submission) { subs <- s })
	require.NoError(t, c.Start())

	answerAndAdvance(t, c, 2, 7)

	var sub Submission
	select {
	case sub = <-subs:
	case <-time.After(time.Second):
		t.Fatal("no submission received")
	}

	assert.Equal(t, entity.SubmitCompleted, sub.Cause)
	assert.Equal(t, entity.ModeGAD7, sub.Mode)
	assert.Equal(t, []int{2, 2, 2, 2, 2, 2, 2}, sub.Responses[entity.InstrumentGAD7])

	assert.Eventually(t, func() bool {
		return c.Snapshot().Phase == entity.PhaseResults
	}, time.Second, time.Millisecond)

	// The session is finished; nothing else can move it.
	assert.ErrorIs(t, c.Advance(), entity.ErrWrongPhase)
	assert.ErrorIs(t, c.Answer(1), entity.ErrWrongPhase)

	select {
	case <-subs:
		t.Fatal("second submission observed")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestControllerTimerForcesSubmission(t *testing.T) {
	subs := make(chan Submission, 1)
	c := newTestController(t, entity.ModeGAD7, 1, func(s Submission) { subs <- s })
	require.NoError(t, c.Start())

	// Answer two questions, leave the rest untouched.
	answerAndAdvance(t, c, 3, 2)

	var sub Submission
	select {
	case sub = <-subs:
	case <-time.After(3 * time.Second):
		t.Fatal("timer did not force submission")
	}

	assert.Equal(t, entity.SubmitTimerExpired, sub.Cause)
	responses := sub.Responses[entity.InstrumentGAD7]
	assert.Equal(t, []int{3, 3, entity.Unanswered, entity.Unanswered, entity.Unanswered, entity.Unanswered, entity.Unanswered}, responses)
}

func TestControllerExpiryRacingFinalAdvance(t *testing.T) {
	// Timer expiry and the final-question advance can land in the same
	// instant; exactly one submission may leave the controller, and the
	// losing call has to fail cleanly.
	for i := 0; i < 100; i++ {
		var submitted atomic.Int32
		c := newTestController(t, entity.ModeGAD7, 3600, func(Submission) { submitted.Add(1) })
		require.NoError(t, c.Start())

		answerAndAdvance(t, c, 1, 6)
		require.NoError(t, c.Answer(1))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.expire()
		}()
		go func() {
			defer wg.Done()
			if err := c.Advance(); err != nil {
				assert.ErrorIs(t, err, entity.ErrWrongPhase)
			}
		}()
		wg.Wait()

		assert.Eventually(t, func() bool {
			return c.Snapshot().Phase == entity.PhaseResults
		}, time.Second, time.Millisecond)
		assert.Equal(t, int32(1), submitted.Load())
	}
}

func TestControllerCancelPreventsSubmission(t *testing.T) {
	var submitted atomic.Int32
	c := newTestController(t, entity.ModeGAD7, 1, func(Submission) { submitted.Add(1) })
	require.NoError(t, c.Start())

	require.NoError(t, c.Cancel())
	assert.ErrorIs(t, c.Cancel(), entity.ErrSessionFinished)

	// Even when the countdown lapses, the canceled session never submits.
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(0), submitted.Load())
	assert.False(t, c.Snapshot().TimerRunning)
}
