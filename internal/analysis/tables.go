package analysis

import "github.com/mindwell/assessment-backend/internal/entity"

// The generator is table-driven: status bands, per-domain commentary and
// recommendation blocks are data, composed by a fixed ordering rule.

const safetyNotice = "IMPORTANT: Your responses indicate thoughts of self-harm. " +
	"Please reach out to a crisis service or a trusted person right away - you do not have to face this alone."

const crisisRecommendation = "Contact a crisis line or emergency services immediately if you feel unsafe " +
	"(in Indonesia: 119 ext. 8, or the nearest emergency department)"

type statusBand struct {
	min      int
	label    string
	template string
	followUp string
}

// statusBands partition the 0-100 wellness score into four tiers.
var statusBands = []statusBand{
	{
		min:      85,
		label:    "Excellent wellbeing",
		template: "Your overall wellness score is %d out of 100, which reflects an excellent state of mental wellbeing.",
		followUp: "3 months",
	},
	{
		min:      70,
		label:    "Good wellbeing",
		template: "Your overall wellness score is %d out of 100, which reflects a generally good state of mental wellbeing.",
		followUp: "2-3 months",
	},
	{
		min:      55,
		label:    "Fair wellbeing",
		template: "Your overall wellness score is %d out of 100, which suggests some areas of your mental wellbeing deserve attention.",
		followUp: "2-4 weeks",
	},
	{
		min:      0,
		label:    "Needs attention",
		template: "Your overall wellness score is %d out of 100, which indicates significant distress across one or more areas.",
		followUp: "1-2 weeks",
	},
}

func statusBandFor(wellness int) statusBand {
	for _, b := range statusBands {
		if wellness >= b.min {
			return b
		}
	}
	return statusBands[len(statusBands)-1]
}

// severityTier collapses the instruments' differing label sets onto one
// commentary scale.
func severityTier(label string) int {
	switch label {
	case "minimal", "normal":
		return 0
	case "mild":
		return 1
	case "moderate":
		return 2
	case "moderately severe", "severe":
		return 3
	default: // "extremely severe"
		return 4
	}
}

var commentary = map[entity.Subscale][]string{
	entity.SubscaleDepression: {
		"Your depression screening falls in the minimal range, with no notable low-mood symptoms reported.",
		"Your depression screening shows mild symptoms, such as occasional low mood or reduced interest.",
		"Your depression screening shows a moderate level of symptoms that is likely affecting your daily life.",
		"Your depression screening shows a serious level of symptoms; speaking with a counselor is strongly advised.",
		"Your depression screening shows a very serious level of symptoms; professional support should not be delayed.",
	},
	entity.SubscaleAnxiety: {
		"Your anxiety screening falls in the minimal range, with worry levels well within the ordinary.",
		"Your anxiety screening shows mild symptoms, such as occasional nervousness or restlessness.",
		"Your anxiety screening shows a moderate level of worry and tension that is worth addressing.",
		"Your anxiety screening shows a serious level of symptoms; a structured intervention is recommended.",
		"Your anxiety screening shows a very serious level of symptoms; professional support should not be delayed.",
	},
	entity.SubscaleStress: {
		"Your stress screening falls in the normal range; current demands appear manageable.",
		"Your stress screening shows mild strain, often linked to workload or life changes.",
		"Your stress screening shows a moderate level of strain that may be wearing you down.",
		"Your stress screening shows a serious level of strain; reducing load and seeking support are advised.",
		"Your stress screening shows a very serious level of strain; professional support should not be delayed.",
	},
}

func commentaryFor(sub entity.Subscale, label string) string {
	return commentary[sub][severityTier(label)]
}

// recommendationBlocks lists the advice emitted per sub-scale and severity
// tier. Each block's internal order is the display order; never sort it.
var recommendationBlocks = map[entity.Subscale][][]string{
	entity.SubscaleDepression: {
		{"Keep up routines that support your mood, such as regular sleep and social contact"},
		{
			"Schedule one enjoyable activity each day, even a small one",
			"Stay connected with friends or family rather than withdrawing",
		},
		{
			"Consider booking a session with a campus counselor",
			"Use behavioral activation: plan and track small daily goals",
			"Keep a consistent sleep and wake schedule",
		},
		{
			"Arrange an appointment with a mental health professional this week",
			"Tell someone you trust how you have been feeling",
			"Avoid making major life decisions until your mood has stabilized",
		},
		{
			"Arrange an appointment with a mental health professional this week",
			"Tell someone you trust how you have been feeling",
			"Avoid making major life decisions until your mood has stabilized",
		},
	},
	entity.SubscaleAnxiety: {
		{"Maintain habits that keep worry in check, such as regular exercise"},
		{
			"Practice slow breathing for a few minutes when tension rises",
			"Limit caffeine late in the day",
		},
		{
			"Try a guided relaxation or mindfulness exercise daily",
			"Write down worries at a set time instead of carrying them all day",
			"Consider booking a session with a campus counselor",
		},
		{
			"Seek a professional assessment for anxiety this week",
			"Practice grounding techniques when panic builds",
			"Reduce stimulants and prioritize rest",
		},
		{
			"Seek a professional assessment for anxiety this week",
			"Practice grounding techniques when panic builds",
			"Reduce stimulants and prioritize rest",
		},
	},
	entity.SubscaleStress: {
		{"Keep a sustainable balance between demands and recovery time"},
		{
			"Build short breaks into your day",
			"Protect time for sleep and meals even when busy",
		},
		{
			"Review your commitments and drop or delegate what you can",
			"Use a wind-down routine before bed",
			"Consider booking a session with a campus counselor",
		},
		{
			"Talk to a counselor about structured stress management this week",
			"Cut back on non-essential commitments now",
			"Schedule daily recovery time and treat it as non-negotiable",
		},
		{
			"Talk to a counselor about structured stress management this week",
			"Cut back on non-essential commitments now",
			"Schedule daily recovery time and treat it as non-negotiable",
		},
	},
}

func recommendationsFor(sub entity.Subscale, label string) []string {
	return recommendationBlocks[sub][severityTier(label)]
}
