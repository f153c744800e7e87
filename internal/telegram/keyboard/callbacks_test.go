package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func TestModeCallback(t *testing.T) {
	data := ModeCallback(entity.ModeIntegrated)

	mode, ok := ParseMode(data)
	assert.True(t, ok)
	assert.Equal(t, entity.ModeIntegrated, mode)

	_, ok = ParseMode("mode:MMPI")
	assert.False(t, ok)

	_, ok = ParseMode(CallbackNext)
	assert.False(t, ok)
}

func TestAnswerCallback(t *testing.T) {
	data := AnswerCallback(2)

	value, ok := ParseAnswer(data)
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	_, ok = ParseAnswer("ans:two")
	assert.False(t, ok)

	_, ok = ParseAnswer(CallbackExit)
	assert.False(t, ok)
}
