package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mindwell/assessment-backend/internal/entity"
)

// BuildReportText composes the plain-text body shared by every output
// format. Sections follow the on-screen results layout.
func BuildReportText(record *entity.AssessmentRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Assessment type: %s\n", record.Type)
	fmt.Fprintf(&b, "Date: %s\n", record.Date.Format("2 January 2006"))
	fmt.Fprintf(&b, "Wellness score: %d / 100\n", record.CompositeScore)
	fmt.Fprintf(&b, "Risk level: %s\n", record.RiskLevel)
	fmt.Fprintf(&b, "Trend: %s (next predicted score %d)\n",
		record.Trend.Trend, record.Trend.NextPredictedScore)
	b.WriteString("\n")

	if len(record.SubScores) > 0 {
		b.WriteString("Sub-scale scores:\n")
		keys := make([]string, 0, len(record.SubScores))
		for key := range record.SubScores {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "  - %s: %d\n", key, record.SubScores[key])
		}
		b.WriteString("\n")
	}

	b.WriteString("Analysis:\n")
	b.WriteString(record.AnalysisText)
	b.WriteString("\n")

	if len(record.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for i, rec := range record.Recommendations {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
		}
	}

	return b.String()
}
