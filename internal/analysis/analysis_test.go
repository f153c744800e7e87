package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
	"github.com/mindwell/assessment-backend/internal/scoring"
)

func integratedInput(t *testing.T, responses map[entity.InstrumentID][]int) Input {
	t.Helper()

	instruments, err := catalog.ForMode(entity.ModeIntegrated)
	require.NoError(t, err)

	scores := make([]*entity.ScoreResult, 0, len(instruments))
	for _, inst := range instruments {
		vector, ok := responses[inst.ID]
		if !ok {
			vector = make([]int, len(inst.Questions))
			responses[inst.ID] = vector
		}
		res, err := scoring.Score(inst, vector)
		require.NoError(t, err)
		scores = append(scores, res)
	}

	wellness := scoring.Composite(scores...)
	return Input{
		Mode:      entity.ModeIntegrated,
		Scores:    scores,
		Responses: responses,
		Wellness:  wellness,
		Risk:      scoring.CompositeRisk(wellness),
	}
}

func TestGenerateSafetyFlag(t *testing.T) {
	t.Run("self-harm item flags even an all-zero vector", func(t *testing.T) {
		phq9 := make([]int, 9)
		phq9[catalog.PHQ9SelfHarmIndex] = 1

		result := Generate(integratedInput(t, map[entity.InstrumentID][]int{
			entity.InstrumentPHQ9: phq9,
		}))

		assert.True(t, result.SafetyFlag)
		require.NotEmpty(t, result.Recommendations)
		assert.Equal(t, crisisRecommendation, result.Recommendations[0])
		assert.Contains(t, result.Narrative, safetyNotice)
	})

	t.Run("no flag without the self-harm item", func(t *testing.T) {
		phq9 := make([]int, 9)
		for i := range phq9 {
			phq9[i] = 3
		}
		phq9[catalog.PHQ9SelfHarmIndex] = 0

		result := Generate(integratedInput(t, map[entity.InstrumentID][]int{
			entity.InstrumentPHQ9: phq9,
		}))

		assert.False(t, result.SafetyFlag)
		for _, rec := range result.Recommendations {
			assert.NotEqual(t, crisisRecommendation, rec)
		}
	})
}

func TestGenerateStatusBands(t *testing.T) {
	t.Run("all-zero answers read as excellent", func(t *testing.T) {
		result := Generate(integratedInput(t, map[entity.InstrumentID][]int{}))

		assert.Equal(t, "Excellent wellbeing", result.StatusLabel)
		assert.Equal(t, "3 months", result.FollowUpInterval)
	})

	t.Run("all-max answers need attention", func(t *testing.T) {
		responses := map[entity.InstrumentID][]int{}
		for _, id := range []entity.InstrumentID{entity.InstrumentPHQ9, entity.InstrumentDASS21, entity.InstrumentGAD7} {
			inst := catalog.MustGet(id)
			v := make([]int, len(inst.Questions))
			for i := range v {
				v[i] = 3
			}
			responses[id] = v
		}

		result := Generate(integratedInput(t, responses))

		assert.Equal(t, "Needs attention", result.StatusLabel)
		assert.Equal(t, "1-2 weeks", result.FollowUpInterval)
		assert.True(t, result.SafetyFlag)
	})
}

func TestGenerateRecommendationOrderIsStable(t *testing.T) {
	responses := map[entity.InstrumentID][]int{
		entity.InstrumentPHQ9: {2, 2, 1, 1, 2, 2, 1, 1, 0},
		entity.InstrumentGAD7: {2, 2, 2, 1, 1, 1, 1},
	}

	first := Generate(integratedInput(t, responses))
	for i := 0; i < 10; i++ {
		again := Generate(integratedInput(t, responses))
		assert.Equal(t, first.Recommendations, again.Recommendations)
	}
}

func TestGenerateSingleModeFollowUp(t *testing.T) {
	inst := catalog.MustGet(entity.InstrumentGAD7)
	vector := []int{3, 3, 3, 3, 3, 3, 3}

	res, err := scoring.Score(inst, vector)
	require.NoError(t, err)

	result := Generate(Input{
		Mode:      entity.ModeGAD7,
		Scores:    []*entity.ScoreResult{res},
		Responses: map[entity.InstrumentID][]int{entity.InstrumentGAD7: vector},
		Wellness:  scoring.Composite(res),
		Risk:      scoring.InstrumentRisk(res),
	})

	assert.Equal(t, "1-2 weeks", result.FollowUpInterval)
	assert.False(t, result.SafetyFlag)
}

func TestDetectPatterns(t *testing.T) {
	t.Run("a single elevated item triggers its pattern", func(t *testing.T) {
		vector := make([]int, 9)
		vector[0] = 2 // affective group

		patterns := detectPatterns(entity.InstrumentPHQ9, vector)
		require.NotEmpty(t, patterns)
	})

	t.Run("self-harm item belongs to no pattern", func(t *testing.T) {
		vector := make([]int, 9)
		vector[catalog.PHQ9SelfHarmIndex] = 3

		assert.Empty(t, detectPatterns(entity.InstrumentPHQ9, vector))
	})

	t.Run("low answers trigger nothing", func(t *testing.T) {
		vector := []int{1, 1, 1, 1, 1, 1, 1}
		assert.Empty(t, detectPatterns(entity.InstrumentGAD7, vector))
	})
}
