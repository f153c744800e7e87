package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func TestProcessing(t *testing.T) {
	t.Run("user completed with time left", func(t *testing.T) {
		session := &entity.SessionDTO{
			Phase:                entity.PhaseProcessing,
			TimeRemainingSeconds: 120,
		}
		assert.Equal(t, MsgProcessing, Processing(session))
	})

	t.Run("countdown ran out", func(t *testing.T) {
		session := &entity.SessionDTO{
			Phase:                entity.PhaseProcessing,
			TimeRemainingSeconds: 0,
		}
		assert.Equal(t, MsgTimeExpired, Processing(session))
	})
}

func TestQuestionShowsProgressAndClock(t *testing.T) {
	answer := 2
	session := &entity.SessionDTO{
		Mode:                 entity.ModeGAD7,
		Phase:                entity.PhaseGAD7,
		Instrument:           entity.InstrumentGAD7,
		TimeRemainingSeconds: 65,
		Question: &entity.QuestionDTO{
			Index:    3,
			Total:    7,
			Text:     "Trouble relaxing",
			Answered: true,
			Answer:   &answer,
		},
	}

	text := Question(session)
	assert.Contains(t, text, "Question 4 of 7")
	assert.Contains(t, text, "1:05")
	assert.Contains(t, text, "Trouble relaxing")
}
