package catalog

import "github.com/mindwell/assessment-backend/internal/entity"

// newGAD7 builds the 7-item Generalized Anxiety Disorder screener.
// Raw range 0-21.
func newGAD7() *entity.Instrument {
	return &entity.Instrument{
		ID:   entity.InstrumentGAD7,
		Name: "Generalized Anxiety Disorder-7 (GAD-7)",
		Questions: []entity.Question{
			{
				Text:     "Feeling nervous, anxious, or on edge",
				TextID:   "Merasa gugup, cemas, atau tegang",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Not being able to stop or control worrying",
				TextID:   "Tidak mampu menghentikan atau mengendalikan rasa khawatir",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Worrying too much about different things",
				TextID:   "Terlalu mengkhawatirkan berbagai hal",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Trouble relaxing",
				TextID:   "Sulit untuk merasa rileks",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Being so restless that it is hard to sit still",
				TextID:   "Sangat gelisah sehingga sulit untuk duduk diam",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Becoming easily annoyed or irritable",
				TextID:   "Mudah jengkel atau tersinggung",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
			{
				Text:     "Feeling afraid as if something awful might happen",
				TextID:   "Merasa takut seakan sesuatu yang buruk akan terjadi",
				Category: entity.SubscaleAnxiety,
				Weight:   1,
			},
		},
		ResponseScale: []entity.ResponseOption{
			{Value: 0, Label: "Not at all"},
			{Value: 1, Label: "Several days"},
			{Value: 2, Label: "More than half the days"},
			{Value: 3, Label: "Nearly every day"},
		},
		SeverityBands: map[entity.Subscale][]entity.SeverityBand{
			entity.SubscaleAnxiety: {
				{MinScore: 0, MaxScore: 4, Label: "minimal", ColorTag: "green"},
				{MinScore: 5, MaxScore: 9, Label: "mild", ColorTag: "yellow"},
				{MinScore: 10, MaxScore: 14, Label: "moderate", ColorTag: "orange"},
				{MinScore: 15, MaxScore: 21, Label: "severe", ColorTag: "red"},
			},
		},
	}
}
