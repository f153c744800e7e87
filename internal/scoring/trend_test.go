package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/assessment-backend/internal/entity"
)

func fixedSource(v float64) Source {
	return func() float64 { return v }
}

func TestPredictTrend(t *testing.T) {
	t.Run("high wellness improves", func(t *testing.T) {
		p := PredictTrend(80, fixedSource(0))
		assert.Equal(t, entity.TrendImproving, p.Trend)
		assert.Equal(t, 84, p.NextPredictedScore)
	})

	t.Run("prediction is clamped at 100", func(t *testing.T) {
		p := PredictTrend(98, fixedSource(0))
		assert.Equal(t, 100, p.NextPredictedScore)
	})

	t.Run("mid wellness is stable", func(t *testing.T) {
		p := PredictTrend(60, fixedSource(0))
		assert.Equal(t, entity.TrendStable, p.Trend)
		assert.Equal(t, 60, p.NextPredictedScore)
	})

	t.Run("low wellness worsens", func(t *testing.T) {
		p := PredictTrend(30, fixedSource(0))
		assert.Equal(t, entity.TrendWorsening, p.Trend)
		assert.Equal(t, 26, p.NextPredictedScore)
	})

	t.Run("prediction is clamped at 0", func(t *testing.T) {
		p := PredictTrend(2, fixedSource(0))
		assert.Equal(t, 0, p.NextPredictedScore)
	})

	t.Run("confidence is bounded by the source", func(t *testing.T) {
		assert.InDelta(t, 0.65, PredictTrend(50, fixedSource(0)).Confidence, 1e-9)
		assert.InDelta(t, 0.95, PredictTrend(50, fixedSource(1)).Confidence, 1e-9)
	})

	t.Run("randomness never changes the classification", func(t *testing.T) {
		for _, v := range []float64{0, 0.5, 0.999} {
			p := PredictTrend(74, fixedSource(v))
			assert.Equal(t, entity.TrendStable, p.Trend)
			assert.Equal(t, 74, p.NextPredictedScore)
		}
	})
}
