package catalog

import "github.com/mindwell/assessment-backend/internal/entity"

// newDASS21 builds the 21-item Depression Anxiety Stress Scales (short
// form). Each sub-scale has 7 items and every response is doubled, so each
// sub-scale's raw range is 0-42.
func newDASS21() *entity.Instrument {
	return &entity.Instrument{
		ID:   entity.InstrumentDASS21,
		Name: "Depression Anxiety Stress Scales-21 (DASS-21)",
		Questions: []entity.Question{
			{
				Text:     "I found it hard to wind down",
				TextID:   "Saya merasa sulit untuk menenangkan diri",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I was aware of dryness of my mouth",
				TextID:   "Saya menyadari mulut saya terasa kering",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I couldn't seem to experience any positive feeling at all",
				TextID:   "Saya sama sekali tidak dapat merasakan perasaan positif",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I experienced breathing difficulty",
				TextID:   "Saya mengalami kesulitan bernapas",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I found it difficult to work up the initiative to do things",
				TextID:   "Saya merasa sulit memulai inisiatif untuk melakukan sesuatu",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I tended to over-react to situations",
				TextID:   "Saya cenderung bereaksi berlebihan terhadap suatu keadaan",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I experienced trembling (e.g. in the hands)",
				TextID:   "Saya mengalami gemetar (misalnya pada tangan)",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I felt that I was using a lot of nervous energy",
				TextID:   "Saya merasa menghabiskan banyak energi karena gelisah",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I was worried about situations in which I might panic and make a fool of myself",
				TextID:   "Saya khawatir berada dalam situasi yang membuat saya panik dan mempermalukan diri sendiri",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I felt that I had nothing to look forward to",
				TextID:   "Saya merasa tidak ada hal yang dapat saya harapkan",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I found myself getting agitated",
				TextID:   "Saya merasa diri saya mudah resah",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I found it difficult to relax",
				TextID:   "Saya merasa sulit untuk bersantai",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I felt down-hearted and blue",
				TextID:   "Saya merasa sedih dan murung",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I was intolerant of anything that kept me from getting on with what I was doing",
				TextID:   "Saya tidak dapat mentolerir apa pun yang menghalangi saya menyelesaikan apa yang sedang saya kerjakan",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I felt I was close to panic",
				TextID:   "Saya merasa hampir panik",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I was unable to become enthusiastic about anything",
				TextID:   "Saya tidak mampu merasa antusias terhadap hal apa pun",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I felt I wasn't worth much as a person",
				TextID:   "Saya merasa diri saya tidak berharga sebagai seseorang",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
			{
				Text:     "I felt that I was rather touchy",
				TextID:   "Saya merasa mudah tersinggung",
				Category: entity.SubscaleStress,
				Weight:   2,
			},
			{
				Text:     "I was aware of the action of my heart in the absence of physical exertion",
				TextID:   "Saya menyadari detak jantung saya meskipun tidak melakukan aktivitas fisik",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I felt scared without any good reason",
				TextID:   "Saya merasa takut tanpa alasan yang jelas",
				Category: entity.SubscaleAnxiety,
				Weight:   2,
			},
			{
				Text:     "I felt that life was meaningless",
				TextID:   "Saya merasa hidup ini tidak berarti",
				Category: entity.SubscaleDepression,
				Weight:   2,
			},
		},
		ResponseScale: []entity.ResponseOption{
			{Value: 0, Label: "Did not apply to me at all"},
			{Value: 1, Label: "Applied to me to some degree, or some of the time"},
			{Value: 2, Label: "Applied to me to a considerable degree, or a good part of time"},
			{Value: 3, Label: "Applied to me very much, or most of the time"},
		},
		SeverityBands: map[entity.Subscale][]entity.SeverityBand{
			entity.SubscaleDepression: {
				{MinScore: 0, MaxScore: 9, Label: "normal", ColorTag: "green"},
				{MinScore: 10, MaxScore: 13, Label: "mild", ColorTag: "yellow"},
				{MinScore: 14, MaxScore: 20, Label: "moderate", ColorTag: "orange"},
				{MinScore: 21, MaxScore: 27, Label: "severe", ColorTag: "red"},
				{MinScore: 28, MaxScore: 42, Label: "extremely severe", ColorTag: "red"},
			},
			entity.SubscaleAnxiety: {
				{MinScore: 0, MaxScore: 7, Label: "normal", ColorTag: "green"},
				{MinScore: 8, MaxScore: 9, Label: "mild", ColorTag: "yellow"},
				{MinScore: 10, MaxScore: 14, Label: "moderate", ColorTag: "orange"},
				{MinScore: 15, MaxScore: 19, Label: "severe", ColorTag: "red"},
				{MinScore: 20, MaxScore: 42, Label: "extremely severe", ColorTag: "red"},
			},
			entity.SubscaleStress: {
				{MinScore: 0, MaxScore: 14, Label: "normal", ColorTag: "green"},
				{MinScore: 15, MaxScore: 18, Label: "mild", ColorTag: "yellow"},
				{MinScore: 19, MaxScore: 25, Label: "moderate", ColorTag: "orange"},
				{MinScore: 26, MaxScore: 33, Label: "severe", ColorTag: "red"},
				{MinScore: 34, MaxScore: 42, Label: "extremely severe", ColorTag: "red"},
			},
		},
	}
}
