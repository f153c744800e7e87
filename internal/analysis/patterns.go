package analysis

import "github.com/mindwell/assessment-backend/internal/entity"

// patternThreshold is the response value (on the 0-3 scale) from which an
// item counts toward a symptom pattern.
const patternThreshold = 2

type pattern struct {
	name     string
	indexes  []int
	sentence string
}

// patternTables maps question indexes to named symptom patterns per
// instrument. The PHQ-9 self-harm item (index 8) is deliberately absent: it
// is handled by the safety flag, not pattern detection.
var patternTables = map[entity.InstrumentID][]pattern{
	entity.InstrumentPHQ9: {
		{
			name:     "affective symptoms",
			indexes:  []int{0, 1, 5},
			sentence: "Your answers show a cluster of affective symptoms (low mood, loss of interest, or negative self-view).",
		},
		{
			name:     "somatic symptoms",
			indexes:  []int{2, 3, 4},
			sentence: "Your answers show a cluster of somatic symptoms (sleep, energy, or appetite changes).",
		},
		{
			name:     "cognitive symptoms",
			indexes:  []int{6, 7},
			sentence: "Your answers show a cluster of cognitive symptoms (trouble concentrating or slowed responses).",
		},
	},
	entity.InstrumentGAD7: {
		{
			name:     "worry symptoms",
			indexes:  []int{0, 1, 2},
			sentence: "Your answers show a persistent-worry pattern that is hard to switch off.",
		},
		{
			name:     "tension symptoms",
			indexes:  []int{3, 4},
			sentence: "Your answers show a physical-tension pattern (difficulty relaxing or sitting still).",
		},
		{
			name:     "irritability and apprehension",
			indexes:  []int{5, 6},
			sentence: "Your answers show irritability or a sense that something bad is about to happen.",
		},
	},
	entity.InstrumentDASS21: {
		{
			name:     "physiological arousal",
			indexes:  []int{1, 3, 6, 18},
			sentence: "Your answers show a physiological-arousal pattern (dry mouth, breathing, trembling, or heart awareness).",
		},
		{
			name:     "low positive affect",
			indexes:  []int{2, 9, 15, 20},
			sentence: "Your answers show a low-positive-affect pattern (little to look forward to or feel enthusiastic about).",
		},
		{
			name:     "tension and agitation",
			indexes:  []int{0, 7, 10, 11, 17},
			sentence: "Your answers show a tension-and-agitation pattern (difficulty winding down or staying settled).",
		},
	},
}

// detectPatterns scans raw responses for items at or above the threshold
// and returns the triggered patterns in table order.
func detectPatterns(id entity.InstrumentID, responses []int) []pattern {
	var triggered []pattern
	for _, p := range patternTables[id] {
		for _, idx := range p.indexes {
			if idx < len(responses) && responses[idx] >= patternThreshold {
				triggered = append(triggered, p)
				break
			}
		}
	}
	return triggered
}
