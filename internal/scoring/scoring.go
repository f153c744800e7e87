package scoring

import (
	"fmt"
	"math"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// Score maps a completed response vector to raw sub-scale scores and
// severity labels. It is a pure function: same input, same output.
//
// Unanswered slots (the -1 sentinel) contribute 0 - never treated as
// missing - so a timer-forced submission with partial answers still scores.
func Score(inst *entity.Instrument, responses []int) (*entity.ScoreResult, error) {
	if len(responses) != len(inst.Questions) {
		return nil, fmt.Errorf("%w: response vector length %d, want %d",
			entity.ErrInvalidParameter, len(responses), len(inst.Questions))
	}

	raw := make(map[entity.Subscale]int)
	for _, sub := range inst.Subscales() {
		raw[sub] = 0
	}

	for i, q := range inst.Questions {
		value := responses[i]
		if value == entity.Unanswered {
			value = 0
		}
		raw[q.Category] += value * q.Weight
	}

	severity := make(map[entity.Subscale]string, len(raw))
	for sub, score := range raw {
		severity[sub] = severityLabel(inst.SeverityBands[sub], score)
	}

	return &entity.ScoreResult{
		InstrumentID: inst.ID,
		Raw:          raw,
		Severity:     severity,
	}, nil
}

// severityLabel selects the band containing the score. Tables are validated
// at registration, so the fallback to the lowest band should be unreachable.
func severityLabel(bands []entity.SeverityBand, score int) string {
	for _, b := range bands {
		if b.Contains(score) {
			return b.Label
		}
	}
	return bands[0].Label
}

// Composite derives the integrated session's 0-100 wellness score from all
// five sub-scale measurements (PHQ-9 depression, DASS-21 depression,
// anxiety and stress, GAD-7 anxiety). Each raw score is normalized to
// 0-100, the normalized values are averaged and the average is inverted,
// so 100 is best and 0 is worst. The inversion and rounding to nearest
// integer are deliberate and load-bearing.
func Composite(results ...*entity.ScoreResult) int {
	var sum float64
	var n int

	for _, res := range results {
		inst := mustInstrument(res.InstrumentID)
		for sub, raw := range res.Raw {
			maxRaw := inst.MaxRawScore(sub)
			sum += float64(raw) / float64(maxRaw) * 100
			n++
		}
	}

	if n == 0 {
		return 100
	}
	return int(math.Round(100 - sum/float64(n)))
}

// CompositeRisk classifies the integrated wellness score.
func CompositeRisk(composite int) entity.RiskLevel {
	switch {
	case composite >= 70:
		return entity.RiskLow
	case composite >= 55:
		return entity.RiskModerate
	default:
		return entity.RiskHigh
	}
}

// InstrumentRisk classifies a single-instrument result.
//
// PHQ-9 and GAD-7 use their shared screening cut-offs (raw < 10 low,
// 10-14 moderate, >= 15 high). DASS-21 takes the worst sub-scale severity:
// normal/mild -> low, moderate -> moderate, severe and above -> high.
func InstrumentRisk(res *entity.ScoreResult) entity.RiskLevel {
	switch res.InstrumentID {
	case entity.InstrumentPHQ9:
		return thresholdRisk(res.Raw[entity.SubscaleDepression])
	case entity.InstrumentGAD7:
		return thresholdRisk(res.Raw[entity.SubscaleAnxiety])
	case entity.InstrumentDASS21:
		worst := entity.RiskLow
		for _, label := range res.Severity {
			risk := dassSeverityRisk(label)
			if riskRank(risk) > riskRank(worst) {
				worst = risk
			}
		}
		return worst
	default:
		return entity.RiskLow
	}
}

func thresholdRisk(raw int) entity.RiskLevel {
	switch {
	case raw < 10:
		return entity.RiskLow
	case raw < 15:
		return entity.RiskModerate
	default:
		return entity.RiskHigh
	}
}

func dassSeverityRisk(label string) entity.RiskLevel {
	switch label {
	case "normal", "mild":
		return entity.RiskLow
	case "moderate":
		return entity.RiskModerate
	default:
		return entity.RiskHigh
	}
}

func riskRank(r entity.RiskLevel) int {
	switch r {
	case entity.RiskHigh:
		return 2
	case entity.RiskModerate:
		return 1
	default:
		return 0
	}
}
