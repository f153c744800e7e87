package catalog

import "github.com/mindwell/assessment-backend/internal/entity"

// newPHQ9 builds the 9-item Patient Health Questionnaire depression
// screener. Raw range 0-27.
func newPHQ9() *entity.Instrument {
	return &entity.Instrument{
		ID:   entity.InstrumentPHQ9,
		Name: "Patient Health Questionnaire-9 (PHQ-9)",
		Questions: []entity.Question{
			{
				Text:     "Little interest or pleasure in doing things",
				TextID:   "Kurang berminat atau tidak merasakan kesenangan dalam melakukan sesuatu",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Feeling down, depressed, or hopeless",
				TextID:   "Merasa murung, tertekan, atau putus asa",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Trouble falling or staying asleep, or sleeping too much",
				TextID:   "Sulit tidur, sering terbangun, atau tidur terlalu banyak",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Feeling tired or having little energy",
				TextID:   "Merasa lelah atau kurang bertenaga",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Poor appetite or overeating",
				TextID:   "Kurang nafsu makan atau makan berlebihan",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
				TextID:   "Merasa buruk tentang diri sendiri - merasa gagal atau mengecewakan diri sendiri maupun keluarga",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Trouble concentrating on things, such as reading the newspaper or watching television",
				TextID:   "Sulit berkonsentrasi pada sesuatu, misalnya membaca atau menonton televisi",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Moving or speaking so slowly that other people could have noticed? Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
				TextID:   "Bergerak atau berbicara sangat lambat sehingga orang lain memperhatikannya, atau sebaliknya sangat gelisah sehingga lebih banyak bergerak dari biasanya",
				Category: entity.SubscaleDepression,
				Weight:   1,
			},
			{
				Text:     "Thoughts that you would be better off dead or of hurting yourself in some way",
				TextID:   "Pikiran bahwa lebih baik mati atau menyakiti diri sendiri dengan cara apa pun",
				Category: entity.SubscaleDepression,
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
			entity.SubscaleDepression: {
				{MinScore: 0, MaxScore: 4, Label: "minimal", ColorTag: "green"},
				{MinScore: 5, MaxScore: 9, Label: "mild", ColorTag: "yellow"},
				{MinScore: 10, MaxScore: 14, Label: "moderate", ColorTag: "orange"},
				{MinScore: 15, MaxScore: 19, Label: "moderately severe", ColorTag: "red"},
				{MinScore: 20, MaxScore: 27, Label: "severe", ColorTag: "red"},
			},
		},
	}
}
