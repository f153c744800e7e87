package assessment

import (
	"github.com/mindwell/assessment-backend/internal/entity"
)

// sessionToDTO converts a live session into its client-facing view.
func sessionToDTO(live *liveSession) *entity.SessionDTO {
	snap := live.controller.Snapshot()

	dto := &entity.SessionDTO{
		ID:                   live.id,
		Mode:                 snap.Mode,
		Phase:                snap.Phase,
		TimeRemainingSeconds: snap.TimeRemaining,
		TimerRunning:         snap.TimerRunning,
		CreatedAt:            live.createdAt,
	}

	if snap.Instrument != nil {
		dto.Instrument = snap.Instrument.ID
		dto.Question = questionToDTO(snap.Instrument, snap.QuestionIndex, snap.Answer)
	}

	return dto
}

func questionToDTO(inst *entity.Instrument, index, answer int) *entity.QuestionDTO {
	q := inst.Questions[index]

	dto := &entity.QuestionDTO{
		Index:   index,
		Total:   len(inst.Questions),
		Text:    q.Text,
		TextID:  q.TextID,
		Options: inst.ResponseScale,
	}
	if answer != entity.Unanswered {
		dto.Answered = true
		v := answer
		dto.Answer = &v
	}
	return dto
}
