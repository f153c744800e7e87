package entity

import (
	"fmt"
	"time"
)

// Unanswered is the sentinel value stored in a response vector slot until
// the user selects an option for that question.
const Unanswered = -1

type InstrumentID string

const (
	InstrumentPHQ9   InstrumentID = "PHQ9"
	InstrumentDASS21 InstrumentID = "DASS21"
	InstrumentGAD7   InstrumentID = "GAD7"
)

func (id *InstrumentID) Validate() error {
	switch *id {
	case InstrumentPHQ9, InstrumentDASS21, InstrumentGAD7:
		return nil
	default:
		return fmt.Errorf("unknown instrument: %s", *id)
	}
}

// Subscale is a named dimension scored within an instrument.
type Subscale string

const (
	SubscaleDepression Subscale = "depression"
	SubscaleAnxiety    Subscale = "anxiety"
	SubscaleStress     Subscale = "stress"
)

// ResponseOption is one entry of an instrument's answer scale.
type ResponseOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// SeverityBand classifies a raw sub-scale score range.
// Bands for a sub-scale must be ascending, contiguous and cover the full
// raw-score range; the catalog enforces this at registration time.
type SeverityBand struct {
	MinScore int    `json:"min_score"`
	MaxScore int    `json:"max_score"`
	Label    string `json:"label"`
	ColorTag string `json:"color_tag"`
}

func (b SeverityBand) Contains(score int) bool {
	return score >= b.MinScore && score <= b.MaxScore
}

type Question struct {
	Text string `json:"text"`
	// TextID is the Indonesian text shown alongside the English item.
	TextID   string   `json:"text_id,omitempty"`
	Category Subscale `json:"category"`
	// Weight multiplies the selected option value before accumulation.
	// PHQ-9 and GAD-7 use 1, DASS-21 uses 2.
	Weight int `json:"weight"`
}

// Instrument is an immutable questionnaire definition.
type Instrument struct {
	ID            InstrumentID              `json:"id"`
	Name          string                    `json:"name"`
	Questions     []Question                `json:"questions"`
	ResponseScale []ResponseOption          `json:"response_scale"`
	SeverityBands map[Subscale][]SeverityBand `json:"severity_bands"`
}

// Subscales returns the distinct categories in question order.
func (i *Instrument) Subscales() []Subscale {
	seen := make(map[Subscale]bool)
	var out []Subscale
	for _, q := range i.Questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}

// MaxRawScore is the highest raw score reachable on the given sub-scale.
func (i *Instrument) MaxRawScore(sub Subscale) int {
	maxOption := 0
	for _, opt := range i.ResponseScale {
		if opt.Value > maxOption {
			maxOption = opt.Value
		}
	}

	total := 0
	for _, q := range i.Questions {
		if q.Category == sub {
			total += maxOption * q.Weight
		}
	}
	return total
}

// MaxOptionValue is the highest selectable option value.
func (i *Instrument) MaxOptionValue() int {
	maxOption := 0
	for _, opt := range i.ResponseScale {
		if opt.Value > maxOption {
			maxOption = opt.Value
		}
	}
	return maxOption
}

// NewResponseVector allocates a response vector with every slot unanswered.
func (i *Instrument) NewResponseVector() []int {
	vector := make([]int, len(i.Questions))
	for idx := range vector {
		vector[idx] = Unanswered
	}
	return vector
}

// ScoreResult holds the scored outcome for one instrument.
type ScoreResult struct {
	InstrumentID InstrumentID          `json:"instrument_id"`
	Raw          map[Subscale]int      `json:"raw"`
	Severity     map[Subscale]string   `json:"severity"`
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

// TrendPrediction is a deterministic heuristic classification of the
// wellness score. Confidence is cosmetic and never influences Trend or
// NextPredictedScore.
type TrendPrediction struct {
	Trend              Trend   `json:"trend"`
	Confidence         float64 `json:"confidence"`
	NextPredictedScore int     `json:"next_predicted_score"`
}

// Analysis is the structured clinical-style narrative generated from
// scored results.
type Analysis struct {
	StatusLabel      string   `json:"status_label"`
	Narrative        string   `json:"narrative"`
	Recommendations  []string `json:"recommendations"`
	FollowUpInterval string   `json:"follow_up_interval"`
	SafetyFlag       bool     `json:"safety_flag"`
}

type SessionMode string

const (
	ModeIntegrated SessionMode = "INTEGRATED"
	ModePHQ9       SessionMode = "PHQ9"
	ModeDASS21     SessionMode = "DASS21"
	ModeGAD7       SessionMode = "GAD7"
)

func (m *SessionMode) Validate() error {
	switch *m {
	case ModeIntegrated, ModePHQ9, ModeDASS21, ModeGAD7:
		return nil
	default:
		return fmt.Errorf("unknown session mode: %s", *m)
	}
}

type SessionPhase string

const (
	PhaseIntro      SessionPhase = "INTRO"
	PhasePHQ9       SessionPhase = "PHQ9"
	PhaseDASS21     SessionPhase = "DASS21"
	PhaseGAD7       SessionPhase = "GAD7"
	PhaseProcessing SessionPhase = "PROCESSING"
	PhaseResults    SessionPhase = "RESULTS"
)

// Timed reports whether the countdown runs in this phase.
func (p SessionPhase) Timed() bool {
	switch p {
	case PhaseIntro, PhaseResults:
		return false
	default:
		return true
	}
}

// SubmitCause records what triggered a submission.
type SubmitCause string

const (
	SubmitCompleted    SubmitCause = "COMPLETED"
	SubmitTimerExpired SubmitCause = "TIMER_EXPIRED"
)

// AssessmentRecordInput is a completed session ready for persistence.
type AssessmentRecordInput struct {
	Type            SessionMode            `json:"type"`
	Date            time.Time              `json:"date"`
	CompositeScore  int                    `json:"composite_score"`
	RiskLevel       RiskLevel              `json:"risk_level"`
	AnalysisText    string                 `json:"analysis_text"`
	Responses       map[InstrumentID][]int `json:"responses"`
	SubScores       map[string]int         `json:"sub_scores"`
	Trend           TrendPrediction        `json:"trend_prediction"`
	Recommendations []string               `json:"recommendations"`
	SafetyFlag      bool                   `json:"safety_flag"`
}

// AssessmentRecord is the persisted unit. Immutable after creation;
// ownership transfers to the repository on Add.
type AssessmentRecord struct {
	ID int64 `json:"id"`
	AssessmentRecordInput
	CreatedAt time.Time `json:"created_at"`
}

// SubScoreKey names a sub-scale measurement in AssessmentRecord.SubScores,
// e.g. "PHQ9.depression".
func SubScoreKey(id InstrumentID, sub Subscale) string {
	return fmt.Sprintf("%s.%s", id, sub)
}
