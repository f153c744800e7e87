package session

import (
	"fmt"
	"sync"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// Submission is handed to the SubmitFunc exactly once per session.
type Submission struct {
	Cause     entity.SubmitCause
	Mode      entity.SessionMode
	Responses map[entity.InstrumentID][]int
}

// SubmitFunc receives the completed (or forcibly terminated) session.
// It runs on its own goroutine; when it returns the controller moves to
// RESULTS regardless of the function's outcome.
type SubmitFunc func(sub Submission)

// Controller is the finite-state machine sequencing a session through
// INTRO -> instrument phases -> PROCESSING -> RESULTS. All navigation
// guards live here; answer slots are only ever mutated through Answer.
type Controller struct {
	mu          sync.Mutex
	mode        entity.SessionMode
	instruments []*entity.Instrument
	responses   [][]int
	phase       entity.SessionPhase
	instIdx     int
	qIndex      int
	timer       *Timer
	submit      SubmitFunc
	submitted   bool
	canceled    bool
}

// NewController builds a controller for the given ordered instrument list.
// The countdown covers the whole session and only starts on Start.
func NewController(mode entity.SessionMode, instruments []*entity.Instrument, durationSeconds int, submit SubmitFunc) *Controller {
	c := &Controller{
		mode:        mode,
		instruments: instruments,
		responses:   make([][]int, len(instruments)),
		phase:       entity.PhaseIntro,
		submit:      submit,
	}
	for i, inst := range instruments {
		c.responses[i] = inst.NewResponseVector()
	}
	c.timer = NewTimer(durationSeconds, c.expire)
	return c
}

func phaseFor(id entity.InstrumentID) entity.SessionPhase {
	switch id {
	case entity.InstrumentPHQ9:
		return entity.PhasePHQ9
	case entity.InstrumentDASS21:
		return entity.PhaseDASS21
	default:
		return entity.PhaseGAD7
	}
}

// Start moves from INTRO to the first instrument and starts the countdown.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != entity.PhaseIntro {
		return fmt.Errorf("%w: start from %s", entity.ErrWrongPhase, c.phase)
	}
	c.phase = phaseFor(c.instruments[0].ID)
	c.instIdx = 0
	c.qIndex = 0
	c.timer.Start()
	return nil
}

// Answer records a response for the current question. It never advances;
// re-selecting an option for the current question before advancing is
// allowed in every mode.
func (c *Controller) Answer(value int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inInstrumentPhase() {
		return fmt.Errorf("%w: answer in %s", entity.ErrWrongPhase, c.phase)
	}
	inst := c.instruments[c.instIdx]
	if value < 0 || value > inst.MaxOptionValue() {
		return fmt.Errorf("%w: %d", entity.ErrInvalidAnswer, value)
	}
	c.responses[c.instIdx][c.qIndex] = value
	return nil
}

// Advance moves to the next question, the next instrument, or PROCESSING
// after the last question of the last instrument. The current question must
// be answered: an unanswered slot rejects the advance with no state change.
func (c *Controller) Advance() error {
	c.mu.Lock()

	if !c.inInstrumentPhase() {
		// The submit goroutine mutates c.phase, so the error has to be
		// built before the lock is released.
		err := fmt.Errorf("%w: advance in %s", entity.ErrWrongPhase, c.phase)
		c.mu.Unlock()
		return err
	}
	if c.responses[c.instIdx][c.qIndex] == entity.Unanswered {
		c.mu.Unlock()
		return entity.ErrAnswerRequired
	}

	if c.qIndex+1 < len(c.instruments[c.instIdx].Questions) {
		c.qIndex++
		c.mu.Unlock()
		return nil
	}

	if c.instIdx+1 < len(c.instruments) {
		c.instIdx++
		c.qIndex = 0
		c.phase = phaseFor(c.instruments[c.instIdx].ID)
		c.mu.Unlock()
		return nil
	}

	// Last question of the last instrument.
	c.beginProcessingLocked(entity.SubmitCompleted)
	return nil
}

// Back returns to the previous question. The integrated flow is
// forward-only, so there it is a deliberate no-op; single-instrument
// sessions may revisit earlier questions of their own instrument.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.inInstrumentPhase() {
		return fmt.Errorf("%w: back in %s", entity.ErrWrongPhase, c.phase)
	}
	if c.mode == entity.ModeIntegrated {
		return nil
	}
	if c.qIndex > 0 {
		c.qIndex--
	}
	return nil
}

// Cancel discards the session from any timed state. No submission happens,
// including for an expiry racing with the cancel.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submitted || c.canceled {
		return entity.ErrSessionFinished
	}
	if !c.phase.Timed() {
		return fmt.Errorf("%w: cancel in %s", entity.ErrWrongPhase, c.phase)
	}
	c.canceled = true
	c.timer.Stop()
	return nil
}

// expire is the timer expiry signal: it forces submission with whatever
// responses exist, bypassing the answer guard.
func (c *Controller) expire() {
	c.mu.Lock()
	if !c.phase.Timed() {
		c.mu.Unlock()
		return
	}
	c.beginProcessingLocked(entity.SubmitTimerExpired)
}

// beginProcessingLocked performs the at-most-once transition to PROCESSING.
// The caller must hold c.mu; the lock is released here. A second trigger
// (user completion and timer expiry in the same instant) is a no-op, so at
// most one submission ever leaves the controller.
func (c *Controller) beginProcessingLocked(cause entity.SubmitCause) {
	if c.submitted || c.canceled {
		c.mu.Unlock()
		return
	}
	c.submitted = true
	c.phase = entity.PhaseProcessing

	sub := Submission{
		Cause:     cause,
		Mode:      c.mode,
		Responses: make(map[entity.InstrumentID][]int, len(c.instruments)),
	}
	for i, inst := range c.instruments {
		vector := make([]int, len(c.responses[i]))
		copy(vector, c.responses[i])
		sub.Responses[inst.ID] = vector
	}
	c.mu.Unlock()

	c.timer.Stop()

	go func() {
		if c.submit != nil {
			c.submit(sub)
		}
		c.mu.Lock()
		c.phase = entity.PhaseResults
		c.mu.Unlock()
	}()
}

func (c *Controller) inInstrumentPhase() bool {
	switch c.phase {
	case entity.PhasePHQ9, entity.PhaseDASS21, entity.PhaseGAD7:
		return true
	default:
		return false
	}
}

// Snapshot is a point-in-time view used by delivery layers.
type Snapshot struct {
	Mode          entity.SessionMode
	Phase         entity.SessionPhase
	Instrument    *entity.Instrument
	QuestionIndex int
	Answer        int
	TimeRemaining int
	TimerRunning  bool
	Canceled      bool
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Mode:          c.mode,
		Phase:         c.phase,
		TimeRemaining: c.timer.Remaining(),
		TimerRunning:  c.timer.Running(),
		Canceled:      c.canceled,
	}
	if c.inInstrumentPhase() {
		snap.Instrument = c.instruments[c.instIdx]
		snap.QuestionIndex = c.qIndex
		snap.Answer = c.responses[c.instIdx][c.qIndex]
	}
	return snap
}
