package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
)

func vector(n, value int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = value
	}
	return v
}

func TestScore(t *testing.T) {
	t.Run("PHQ9 all ones is mild", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentPHQ9)

		res, err := Score(inst, vector(9, 1))
		require.NoError(t, err)

		assert.Equal(t, 9, res.Raw[entity.SubscaleDepression])
		assert.Equal(t, "mild", res.Severity[entity.SubscaleDepression])
	})

	t.Run("DASS21 weights double every item", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentDASS21)

		res, err := Score(inst, vector(21, 3))
		require.NoError(t, err)

		// 7 items of 3, doubled.
		assert.Equal(t, 42, res.Raw[entity.SubscaleAnxiety])
		assert.Equal(t, "extremely severe", res.Severity[entity.SubscaleAnxiety])
	})

	t.Run("unanswered sentinel scores as zero", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentGAD7)

		responses := vector(7, 2)
		responses[3] = entity.Unanswered
		responses[4] = entity.Unanswered

		res, err := Score(inst, responses)
		require.NoError(t, err)
		assert.Equal(t, 10, res.Raw[entity.SubscaleAnxiety])
	})

	t.Run("fully unanswered vector scores zero", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentPHQ9)

		res, err := Score(inst, inst.NewResponseVector())
		require.NoError(t, err)
		assert.Equal(t, 0, res.Raw[entity.SubscaleDepression])
		assert.Equal(t, "minimal", res.Severity[entity.SubscaleDepression])
	})

	t.Run("rejects wrong vector length", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentPHQ9)

		_, err := Score(inst, vector(7, 1))
		assert.ErrorIs(t, err, entity.ErrInvalidParameter)
	})
}

func scoreAll(t *testing.T, value int) []*entity.ScoreResult {
	t.Helper()

	instruments, err := catalog.ForMode(entity.ModeIntegrated)
	require.NoError(t, err)

	results := make([]*entity.ScoreResult, 0, len(instruments))
	for _, inst := range instruments {
		res, err := Score(inst, vector(len(inst.Questions), value))
		require.NoError(t, err)
		results = append(results, res)
	}
	return results
}

func TestComposite(t *testing.T) {
	t.Run("all zero answers give perfect wellness", func(t *testing.T) {
		assert.Equal(t, 100, Composite(scoreAll(t, 0)...))
	})

	t.Run("all max answers give zero wellness", func(t *testing.T) {
		assert.Equal(t, 0, Composite(scoreAll(t, 3)...))
	})

	t.Run("no results give perfect wellness", func(t *testing.T) {
		assert.Equal(t, 100, Composite())
	})

	t.Run("rounds to nearest integer", func(t *testing.T) {
		wellness := Composite(scoreAll(t, 1)...)
		// Five subscales: 9/27, 14/42 x3, 7/21 normalized to 33.33 each.
		assert.Equal(t, 67, wellness)
	})
}

func TestCompositeRisk(t *testing.T) {
	assert.Equal(t, entity.RiskLow, CompositeRisk(100))
	assert.Equal(t, entity.RiskLow, CompositeRisk(70))
	assert.Equal(t, entity.RiskModerate, CompositeRisk(69))
	assert.Equal(t, entity.RiskModerate, CompositeRisk(55))
	assert.Equal(t, entity.RiskHigh, CompositeRisk(54))
	assert.Equal(t, entity.RiskHigh, CompositeRisk(0))
}

func TestInstrumentRisk(t *testing.T) {
	t.Run("PHQ9 thresholds", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentPHQ9)

		res, err := Score(inst, vector(9, 1))
		require.NoError(t, err)
		assert.Equal(t, entity.RiskLow, InstrumentRisk(res))

		res, err = Score(inst, vector(9, 2))
		require.NoError(t, err)
		assert.Equal(t, entity.RiskHigh, InstrumentRisk(res))
	})

	t.Run("DASS21 uses the worst subscale", func(t *testing.T) {
		inst := catalog.MustGet(entity.InstrumentDASS21)

		// Max out only the anxiety items.
		responses := vector(21, 0)
		for i, q := range inst.Questions {
			if q.Category == entity.SubscaleAnxiety {
				responses[i] = 3
			}
		}

		res, err := Score(inst, responses)
		require.NoError(t, err)
		assert.Equal(t, entity.RiskHigh, InstrumentRisk(res))
	})
}
