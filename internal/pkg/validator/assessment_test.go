package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func TestValidateStartSession(t *testing.T) {
	v := New()

	assert.ErrorIs(t, v.ValidateStartSession(&entity.StartSessionRequest{}), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateStartSession(&entity.StartSessionRequest{Mode: "WHODAS"}), entity.ErrInvalidParameter)
	assert.NoError(t, v.ValidateStartSession(&entity.StartSessionRequest{Mode: entity.ModePHQ9}))
}

func TestValidateSubmitAnswer(t *testing.T) {
	v := New()

	assert.ErrorIs(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{}), entity.ErrMissingField)

	// Zero is a real scale value, not a missing one.
	zero := 0
	assert.NoError(t, v.ValidateSubmitAnswer(&entity.SubmitAnswerRequest{Value: &zero}))
}

func TestValidateReportFormat(t *testing.T) {
	v := New()

	format, err := v.ValidateReportFormat("")
	require.NoError(t, err)
	assert.Equal(t, entity.FormatMarkdown, format)

	format, err = v.ValidateReportFormat(entity.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, entity.FormatPDF, format)

	_, err = v.ValidateReportFormat("xlsx")
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}
