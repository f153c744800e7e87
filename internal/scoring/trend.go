package scoring

import (
	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
)

func mustInstrument(id entity.InstrumentID) *entity.Instrument {
	return catalog.MustGet(id)
}

// Source supplies the bounded randomness used for the cosmetic trend
// confidence. Injectable so scoring stays deterministic under test.
type Source func() float64

// PredictTrend classifies the wellness score with fixed thresholds.
// Trend and NextPredictedScore are deterministic functions of the score;
// only Confidence draws on the random source, and it never influences the
// other two fields.
func PredictTrend(wellness int, rnd Source) entity.TrendPrediction {
	var trend entity.Trend
	var next int

	switch {
	case wellness >= 75:
		trend = entity.TrendImproving
		next = wellness + 4
		if next > 100 {
			next = 100
		}
	case wellness >= 50:
		trend = entity.TrendStable
		next = wellness
	default:
		trend = entity.TrendWorsening
		next = wellness - 4
		if next < 0 {
			next = 0
		}
	}

	return entity.TrendPrediction{
		Trend:              trend,
		Confidence:         0.65 + rnd()*0.30,
		NextPredictedScore: next,
	}
}
