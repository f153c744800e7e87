package entity

import "time"

type StartSessionRequest struct {
	Mode SessionMode `json:"mode"`
}

type SubmitAnswerRequest struct {
	// Value is a pointer so that 0 (a valid scale value) can be told apart
	// from a missing field.
	Value *int `json:"value"`
}

// QuestionDTO is the current question as shown to the client.
type QuestionDTO struct {
	Index   int              `json:"index"`
	Total   int              `json:"total"`
	Text    string           `json:"text"`
	TextID  string           `json:"text_id,omitempty"`
	Options []ResponseOption `json:"options"`
	// Answered mirrors whether the slot is non-sentinel, so clients can
	// enable the advance control without re-deriving it.
	Answered bool `json:"answered"`
	Answer   *int `json:"answer,omitempty"`
}

// SessionDTO is a point-in-time view of a live session.
type SessionDTO struct {
	ID                   string       `json:"session_id"`
	Mode                 SessionMode  `json:"mode"`
	Phase                SessionPhase `json:"phase"`
	Instrument           InstrumentID `json:"instrument,omitempty"`
	Question             *QuestionDTO `json:"question,omitempty"`
	TimeRemainingSeconds int          `json:"time_remaining_seconds"`
	TimerRunning         bool         `json:"timer_running"`
	CreatedAt            time.Time    `json:"created_at"`
}

type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatPDF      ReportFormat = "pdf"
	FormatDOCX     ReportFormat = "docx"
)

func (f *ReportFormat) Validate() error {
	switch *f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return nil
	default:
		return ErrUnsupportedFormat
	}
}
