package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func TestGet(t *testing.T) {
	t.Run("returns registered instruments", func(t *testing.T) {
		for _, id := range []entity.InstrumentID{entity.InstrumentPHQ9, entity.InstrumentDASS21, entity.InstrumentGAD7} {
			inst, err := Get(id)
			require.NoError(t, err)
			assert.Equal(t, id, inst.ID)
		}
	})

	t.Run("rejects unknown instrument", func(t *testing.T) {
		_, err := Get(entity.InstrumentID("MMPI"))
		assert.ErrorIs(t, err, entity.ErrUnknownInstrument)
	})
}

func TestForMode(t *testing.T) {
	t.Run("integrated mode runs all three in fixed order", func(t *testing.T) {
		instruments, err := ForMode(entity.ModeIntegrated)
		require.NoError(t, err)
		require.Len(t, instruments, 3)
		assert.Equal(t, entity.InstrumentPHQ9, instruments[0].ID)
		assert.Equal(t, entity.InstrumentDASS21, instruments[1].ID)
		assert.Equal(t, entity.InstrumentGAD7, instruments[2].ID)
	})

	t.Run("single modes run one instrument", func(t *testing.T) {
		instruments, err := ForMode(entity.ModeDASS21)
		require.NoError(t, err)
		require.Len(t, instruments, 1)
		assert.Equal(t, entity.InstrumentDASS21, instruments[0].ID)
	})
}

func TestQuestionCounts(t *testing.T) {
	counts := map[entity.InstrumentID]int{
		entity.InstrumentPHQ9:   9,
		entity.InstrumentDASS21: 21,
		entity.InstrumentGAD7:   7,
	}

	for id, want := range counts {
		inst := MustGet(id)
		assert.Len(t, inst.Questions, want, "question count for %s", id)
	}
}

func TestDASS21SubscaleBalance(t *testing.T) {
	inst := MustGet(entity.InstrumentDASS21)

	perSubscale := map[entity.Subscale]int{}
	for _, q := range inst.Questions {
		perSubscale[q.Category]++
	}

	assert.Equal(t, 7, perSubscale[entity.SubscaleDepression])
	assert.Equal(t, 7, perSubscale[entity.SubscaleAnxiety])
	assert.Equal(t, 7, perSubscale[entity.SubscaleStress])
}

// Every raw score from zero to the subscale maximum must land in exactly
// one severity band.
func TestSeverityBandsPartitionScoreRange(t *testing.T) {
	for _, id := range []entity.InstrumentID{entity.InstrumentPHQ9, entity.InstrumentDASS21, entity.InstrumentGAD7} {
		inst := MustGet(id)
		for _, sub := range inst.Subscales() {
			bands := inst.SeverityBands[sub]
			maxRaw := inst.MaxRawScore(sub)

			t.Run(fmt.Sprintf("%s/%s", id, sub), func(t *testing.T) {
				for score := 0; score <= maxRaw; score++ {
					matches := 0
					for _, b := range bands {
						if b.Contains(score) {
							matches++
						}
					}
					assert.Equal(t, 1, matches, "score %d", score)
				}
			})
		}
	}
}

func TestPHQ9SelfHarmIndex(t *testing.T) {
	inst := MustGet(entity.InstrumentPHQ9)
	require.Greater(t, len(inst.Questions), PHQ9SelfHarmIndex)
	assert.Contains(t, inst.Questions[PHQ9SelfHarmIndex].Text, "hurting yourself")
}

func TestValidateBandsRejectsGaps(t *testing.T) {
	bands := []entity.SeverityBand{
		{MinScore: 0, MaxScore: 4, Label: "Minimal"},
		{MinScore: 6, MaxScore: 27, Label: "Severe"},
	}
	assert.Error(t, validateBands(bands, 27))
}

func TestValidateBandsRejectsShortCoverage(t *testing.T) {
	bands := []entity.SeverityBand{
		{MinScore: 0, MaxScore: 20, Label: "Minimal"},
	}
	assert.Error(t, validateBands(bands, 27))
}
