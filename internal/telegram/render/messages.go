package render

import (
	"fmt"
	"strings"

	"github.com/mindwell/assessment-backend/internal/catalog"
	"github.com/mindwell/assessment-backend/internal/entity"
)

// Static message texts.
const (
	MsgWelcome = "👋 Hi! I can guide you through a short mental-health self-assessment.\n\n" +
		"The full assessment combines PHQ-9, DASS-21 and GAD-7 and takes about 15 minutes. " +
		"You can also take a single questionnaire.\n\nChoose where to start:"

	MsgHelp = "Commands:\n" +
		"/start - begin a new assessment\n" +
		"/cancel - discard the current assessment\n" +
		"/history - your recent assessment results\n\n" +
		"Answers are given with the buttons under each question."

	MsgNoActiveSession = "No active assessment. Use /start to begin."
	MsgSessionExited   = "Assessment discarded. Use /start whenever you are ready."
	MsgProcessing      = "⏳ Scoring your answers..."
	MsgResultNotReady  = "Still scoring, one moment..."
	MsgExitConfirm     = "Exit the assessment? Your answers will be discarded."
	MsgHistoryEmpty    = "No saved assessments yet."
	MsgTimeExpired     = "⏰ Time is up. Your answers so far have been submitted for scoring."

	ErrGeneric = "❌ Something went wrong. Please try again or use /start."
)

// Question renders the current question with progress and the remaining
// time.
func Question(session *entity.SessionDTO) string {
	q := session.Question
	if q == nil {
		return MsgProcessing
	}

	inst := catalog.MustGet(session.Instrument)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s\n", inst.Name)
	fmt.Fprintf(&b, "Question %d of %d · ⏱ %s\n\n", q.Index+1, q.Total, formatClock(session.TimeRemainingSeconds))
	b.WriteString("Over the last period, how often have you been bothered by:\n\n")
	fmt.Fprintf(&b, "*%s*", q.Text)
	return b.String()
}

// Processing renders the scoring screen. A session whose countdown ran out
// was submitted by the timer, not the user, and says so.
func Processing(session *entity.SessionDTO) string {
	if session.TimeRemainingSeconds == 0 {
		return MsgTimeExpired
	}
	return MsgProcessing
}

// Results renders the scored record summary.
func Results(record *entity.AssessmentRecord) string {
	var b strings.Builder

	b.WriteString("📊 *Assessment results*\n\n")
	fmt.Fprintf(&b, "Wellness score: *%d/100*\n", record.CompositeScore)
	fmt.Fprintf(&b, "Risk level: %s\n", riskLabel(record.RiskLevel))
	fmt.Fprintf(&b, "Trend: %s\n\n", string(record.Trend.Trend))

	b.WriteString(record.AnalysisText)

	if len(record.Recommendations) > 0 {
		b.WriteString("\n\n*Recommendations:*\n")
		for i, rec := range record.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

// HistoryEntry renders one line of the /history listing.
func HistoryEntry(record *entity.AssessmentRecord) string {
	return fmt.Sprintf("%s · %s · %d/100 · %s",
		record.Date.Format("2 Jan 2006"),
		string(record.Type),
		record.CompositeScore,
		riskLabel(record.RiskLevel),
	)
}

func riskLabel(risk entity.RiskLevel) string {
	switch risk {
	case entity.RiskLow:
		return "🟢 low"
	case entity.RiskModerate:
		return "🟡 moderate"
	case entity.RiskHigh:
		return "🔴 high"
	default:
		return string(risk)
	}
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
