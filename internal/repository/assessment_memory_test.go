package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func sampleInput(score int) entity.AssessmentRecordInput {
	return entity.AssessmentRecordInput{
		Type:           entity.ModeIntegrated,
		Date:           time.Now(),
		CompositeScore: score,
		RiskLevel:      entity.RiskLow,
		AnalysisText:   "sample",
		Responses: map[entity.InstrumentID][]int{
			entity.InstrumentPHQ9: {0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		SubScores:       map[string]int{"PHQ9.depression": 0},
		Recommendations: []string{"keep it up"},
	}
}

func TestAssessmentMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewAssessmentMemory()

	t.Run("identifiers increase monotonically", func(t *testing.T) {
		first, err := repo.Add(ctx, sampleInput(90))
		require.NoError(t, err)
		second, err := repo.Add(ctx, sampleInput(80))
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
		assert.False(t, first.CreatedAt.IsZero())
	})

	t.Run("list is newest first", func(t *testing.T) {
		records, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, int64(2), records[0].ID)
		assert.Equal(t, int64(1), records[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		record, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 90, record.CompositeScore)

		_, err = repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, entity.ErrRecordNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, 1))
		assert.ErrorIs(t, repo.Remove(ctx, 1), entity.ErrRecordNotFound)

		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
