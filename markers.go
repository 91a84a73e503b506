package mindtext

import "strings"

// Marker lists are matched by substring containment against the whole
// lowercased text, not by token. "tired" therefore matches inside any longer
// run of characters that contains it.

type categoryMarkers struct {
	category Category
	markers  map[Language][]string
}

// categoryRules is ordered by priority; the first category with a hit wins.
var categoryRules = []categoryMarkers{
	{
		category: CategoryAnxiety,
		markers: map[Language][]string{
			English: {"anxious", "worried", "panic", "fear", "nervous", "scared", "overwhelmed", "restless", "uneasy", "tense"},
			Hindi:   {"चिंता", "डर", "घबराहट", "परेशान", "भयभीत", "बेचैन", "तनावग्रस्त"},
		},
	},
	{
		category: CategoryDepression,
		markers: map[Language][]string{
			English: {"depressed", "sad", "hopeless", "empty", "lonely", "worthless", "down", "low", "blue", "miserable"},
			Hindi:   {"उदास", "निराश", "अकेला", "खाली", "दुखी", "हताश", "निष्क्रिय"},
		},
	},
	{
		category: CategoryStress,
		markers: map[Language][]string{
			English: {"stress", "pressure", "work", "tired", "exhausted", "burden", "heavy", "overloaded", "strained"},
			Hindi:   {"तनाव", "दबाव", "काम", "थका", "बोझ", "भारी"},
		},
	},
	{
		category: CategoryWellbeing,
		markers: map[Language][]string{
			English: {"happy", "peace", "meditation", "yoga", "better", "good", "grateful", "positive", "calm", "relaxed", "content"},
			Hindi:   {"खुश", "शांति", "योग", "ध्यान", "बेहतर", "प्रसन्न", "संतुष्ट"},
		},
	},
	{
		category: CategorySupport,
		markers: map[Language][]string{
			English: {"friend", "family", "help", "support", "therapy", "counseling", "talk", "listen", "care", "love"},
			Hindi:   {"दोस्त", "परिवार", "सहायता", "मदद", "साथ", "समर्थन"},
		},
	},
}

// fallbackNegatives are matched as whole whitespace-separated tokens,
// regardless of the detected language.
var fallbackNegatives = newWordSet(
	"bad", "terrible", "awful", "horrible", "worst", "hate", "बुरा", "भयानक", "घृणा",
)

// Severity markers.
var (
	crisisMarkers = map[Language][]string{
		English: {"suicide", "kill", "death", "die", "end", "harm", "hurt myself"},
		Hindi:   {"आत्महत्या", "मौत", "खत्म", "नुकसान"},
	}

	severeMarkers = map[Language][]string{
		English: {"very", "extremely", "unbearable", "control", "losing", "can't"},
		Hindi:   {"बहुत", "अत्यधिक", "असहनीय", "नियंत्रण"},
	}
)

// riskIndicators is deliberately narrower than crisisMarkers and is applied
// to every text regardless of language.
var riskIndicators = []string{
	"suicide", "kill", "death", "harm myself", "end it all", "आत्महत्या", "मौत",
}

// markersFor picks the Hindi list for Hindi text and English otherwise.
func markersFor(m map[Language][]string, lang Language) []string {
	if lang == Hindi {
		return m[Hindi]
	}
	return m[English]
}

// containsAny reports whether text contains any of the markers as a substring
func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
