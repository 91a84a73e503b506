package mindtext

// recommendationSet holds the three advisory lists for one language.
type recommendationSet struct {
	crisis   []string
	elevated []string
	general  []string
}

var recommendations = map[Language]recommendationSet{
	English: {
		crisis: []string{
			"Contact a mental health professional immediately",
			"Call National Suicide Prevention Lifeline: 988",
			"Reach out to a trusted friend or family member",
			"Go to the nearest emergency room if in immediate danger",
		},
		elevated: []string{
			"Consider speaking with a mental health counselor",
			"Practice regular exercise and mindfulness",
			"Maintain a consistent sleep schedule",
			"Limit alcohol and caffeine intake",
		},
		general: []string{
			"Try meditation and breathing exercises",
			"Connect with friends and family",
			"Engage in activities you enjoy",
			"Consider keeping a mood journal",
		},
	},
	Hindi: {
		crisis: []string{
			"तुरंत किसी मानसिक स्वास्थ्य विशेषज्ञ से संपर्क करें",
			"आत्महत्या रोकथाम हेल्पलाइन: 91-9152987821",
			"किसी विश्वसनीय व्यक्ति से बात करें",
		},
		elevated: []string{
			"मानसिक स्वास्थ्य परामर्शदाता से मिलें",
			"नियमित व्यायाम और योग करें",
			"पर्याप्त नींद लें",
		},
		general: []string{
			"ध्यान और श्वास अभ्यास करें",
			"दोस्तों और परिवार से बात करें",
			"स्वस्थ गतिविधियों में भाग लें",
		},
	},
}

// Recommend selects the advisory list for a result: crisis risk first, then
// severity 3 and above, then the general list. Sentiment and category do not
// influence the choice. The returned slice is a fresh copy.
func Recommend(sentiment Polarity, category Category, severity Severity, risk RiskLevel, lang Language) []string {
	set, ok := recommendations[lang]
	if !ok {
		set = recommendations[English]
	}

	var list []string
	switch {
	case risk == RiskCrisis:
		list = set.crisis
	case severity >= SeverityModerate:
		list = set.elevated
	default:
		list = set.general
	}
	return append([]string(nil), list...)
}
