package keyboard

import (
	"strconv"
	"strings"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// Callback data values exchanged with inline keyboards.
const (
	CallbackNext        = "action:next"
	CallbackBack        = "action:back"
	CallbackExit        = "action:exit"
	CallbackExitConfirm = "action:exit_confirm"
	CallbackExitKeep    = "action:exit_keep"
	CallbackResult      = "action:result"
	CallbackNewSession  = "action:new"

	modePrefix   = "mode:"
	answerPrefix = "ans:"
)

// ModeCallback encodes a session mode selection.
func ModeCallback(mode entity.SessionMode) string {
	return modePrefix + string(mode)
}

// ParseMode decodes a mode selection callback.
func ParseMode(data string) (entity.SessionMode, bool) {
	if !strings.HasPrefix(data, modePrefix) {
		return "", false
	}
	mode := entity.SessionMode(strings.TrimPrefix(data, modePrefix))
	if err := mode.Validate(); err != nil {
		return "", false
	}
	return mode, true
}

// AnswerCallback encodes a response option selection.
func AnswerCallback(value int) string {
	return answerPrefix + strconv.Itoa(value)
}

// ParseAnswer decodes a response option callback.
func ParseAnswer(data string) (int, bool) {
	if !strings.HasPrefix(data, answerPrefix) {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimPrefix(data, answerPrefix))
	if err != nil {
		return 0, false
	}
	return value, true
}
