package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func sampleRecord() *entity.AssessmentRecord {
	return &entity.AssessmentRecord{
		ID: 3,
		AssessmentRecordInput: entity.AssessmentRecordInput{
			Type:           entity.ModeIntegrated,
			Date:           time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			CompositeScore: 82,
			RiskLevel:      entity.RiskLow,
			AnalysisText:   "Overall wellbeing is good.",
			SubScores: map[string]int{
				"PHQ9.depression": 3,
				"GAD7.anxiety":    2,
			},
			Trend: entity.TrendPrediction{
				Trend:              entity.TrendImproving,
				Confidence:         0.8,
				NextPredictedScore: 86,
			},
			Recommendations: []string{"Keep your current routines.", "Re-assess in three months."},
		},
	}
}

func TestBuildReportText(t *testing.T) {
	text := BuildReportText(sampleRecord())

	assert.Contains(t, text, "Assessment type: INTEGRATED")
	assert.Contains(t, text, "Date: 14 March 2026")
	assert.Contains(t, text, "Wellness score: 82 / 100")
	assert.Contains(t, text, "Trend: improving (next predicted score 86)")
	assert.Contains(t, text, "1. Keep your current routines.")

	// Sub-scores are listed alphabetically for a stable layout.
	assert.Less(t, strings.Index(text, "GAD7.anxiety: 2"), strings.Index(text, "PHQ9.depression: 3"))
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	t.Run("markdown", func(t *testing.T) {
		f, err := factory.Create(entity.FormatMarkdown)
		require.NoError(t, err)
		assert.Equal(t, ".md", f.FileExtension())

		data, err := f.Format("hello")
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})

	t.Run("pdf", func(t *testing.T) {
		f, err := factory.Create(entity.FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, ".pdf", f.FileExtension())
	})

	t.Run("docx", func(t *testing.T) {
		f, err := factory.Create(entity.FormatDOCX)
		require.NoError(t, err)
		assert.Equal(t, ".docx", f.FileExtension())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := factory.Create("xlsx")
		assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
	})
}
