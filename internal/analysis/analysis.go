package analysis

import (
	"fmt"
	"strings"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
)

// Input carries everything the generator needs; it performs no scoring of
// its own.
type Input struct {
	Mode      entity.SessionMode
	Scores    []*entity.ScoreResult
	Responses map[entity.InstrumentID][]int
	// Wellness is the 0-100 composite (100 best).
	Wellness int
	Risk     entity.RiskLevel
}

// Generate produces the structured clinical-style narrative for a scored
// session: status banding, per-domain commentary, symptom patterns, the
// safety flag and an ordered recommendations list.
func Generate(in Input) *entity.Analysis {
	band := statusBandFor(in.Wellness)
	safety := safetyFlagged(in.Responses)

	var sections []string

	if safety {
		sections = append(sections, safetyNotice)
	}

	sections = append(sections, fmt.Sprintf(band.template, in.Wellness))

	for _, res := range in.Scores {
		inst := catalog.MustGet(res.InstrumentID)
		for _, sub := range inst.Subscales() {
			sections = append(sections, commentaryFor(sub, res.Severity[sub]))
		}
	}

	for _, res := range in.Scores {
		for _, p := range detectPatterns(res.InstrumentID, in.Responses[res.InstrumentID]) {
			sections = append(sections, p.sentence)
		}
	}

	recommendations := buildRecommendations(in.Scores, safety)

	return &entity.Analysis{
		StatusLabel:      band.label,
		Narrative:        strings.Join(sections, " "),
		Recommendations:  recommendations,
		FollowUpInterval: followUpInterval(in.Mode, band, in.Risk),
		SafetyFlag:       safety,
	}
}

// safetyFlagged checks the designated PHQ-9 self-harm item. The check runs
// unconditionally: a low overall score never suppresses it.
func safetyFlagged(responses map[entity.InstrumentID][]int) bool {
	vector, ok := responses[entity.InstrumentPHQ9]
	if !ok || len(vector) <= catalog.PHQ9SelfHarmIndex {
		return false
	}
	return vector[catalog.PHQ9SelfHarmIndex] > 0
}

// buildRecommendations concatenates the severity-tier blocks per sub-scale
// in administration order. Order within a tier is fixed; the list is never
// sorted. The crisis recommendation, when triggered, always comes first.
func buildRecommendations(scores []*entity.ScoreResult, safety bool) []string {
	var recs []string
	if safety {
		recs = append(recs, crisisRecommendation)
	}

	seen := make(map[string]bool)
	for _, res := range scores {
		inst := catalog.MustGet(res.InstrumentID)
		for _, sub := range inst.Subscales() {
			for _, r := range recommendationsFor(sub, res.Severity[sub]) {
				if seen[r] {
					continue
				}
				seen[r] = true
				recs = append(recs, r)
			}
		}
	}
	return recs
}

func followUpInterval(mode entity.SessionMode, band statusBand, risk entity.RiskLevel) string {
	if mode == entity.ModeIntegrated {
		return band.followUp
	}
	switch risk {
	case entity.RiskHigh:
		return "1-2 weeks"
	case entity.RiskModerate:
		return "2-4 weeks"
	default:
		return "2-3 months"
	}
}
