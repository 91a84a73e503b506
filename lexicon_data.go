package mindtext

// Movie-review polarity words.
var reviewPositiveWords = []string{
	"amazing", "awesome", "brilliant", "excellent", "fantastic", "great", "incredible", "love", "perfect", "wonderful",
	"outstanding", "superb", "magnificent", "spectacular", "phenomenal", "exceptional", "marvelous", "terrific",
	"beautiful", "stunning", "breathtaking", "masterpiece", "compelling", "engaging", "powerful", "moving",
	"emotional", "touching", "inspiring", "uplifting", "heartwarming", "delightful", "charming", "captivating",
	"thrilling", "exciting", "entertaining", "enjoyable", "satisfying", "rewarding", "impressive", "remarkable",
	"extraordinary", "flawless", "genius", "masterful", "skillful", "talented", "creative", "original",
	"innovative", "fresh", "unique", "special", "memorable", "unforgettable", "classic", "timeless",
}

// "self-indulgent" can never match a review token because the hyphen is
// stripped during tokenization. It stays in the list as shipped.
var reviewNegativeWords = []string{
	"awful", "terrible", "horrible", "bad", "worst", "hate", "boring", "stupid", "disappointing", "waste",
	"pathetic", "ridiculous", "annoying", "frustrating", "confusing", "mess", "disaster", "failure",
	"weak", "poor", "lacking", "insufficient", "inadequate", "subpar", "mediocre", "forgettable",
	"pointless", "meaningless", "shallow", "empty", "hollow", "fake", "artificial", "forced",
	"cringe", "awkward", "uncomfortable", "painful", "unbearable", "unwatchable", "dull", "bland",
	"generic", "cliche", "predictable", "formulaic", "repetitive", "monotonous", "tedious", "sluggish",
	"slow", "dragging", "overlong", "excessive", "pretentious", "self-indulgent", "overrated", "hyped",
}

// negationWords flip part of the review score mass.
var negationWords = []string{
	"not", "no", "never", "nothing", "nobody", "nowhere", "neither", "nor",
}

// Mental-health polarity words.
var (
	wellnessPositiveEnglish = []string{
		"happy", "joy", "love", "peace", "calm", "grateful", "blessed", "hopeful", "confident", "strong",
		"better", "good", "great", "amazing", "wonderful", "beautiful", "positive", "optimistic",
		"healing", "recovery", "progress", "growth", "support", "help", "care", "comfort", "relief",
		"meditation", "therapy", "exercise", "yoga", "mindfulness", "breathing", "relaxation",
	}

	wellnessPositiveHindi = []string{
		"खुश", "खुशी", "प्रेम", "शांति", "आराम", "कृतज्ञ", "आशा", "विश्वास", "मजबूत", "बेहतर",
		"अच्छा", "सुंदर", "सकारात्मक", "उम्मीद", "चंगाई", "प्रगति", "सहायता", "देखभाल",
		"ध्यान", "योग", "व्यायाम", "श्वास", "विश्राम", "समर्थन", "मदद",
	}

	wellnessNegativeEnglish = []string{
		"sad", "depressed", "anxious", "worried", "scared", "afraid", "panic", "stress", "overwhelmed",
		"hopeless", "helpless", "lonely", "isolated", "empty", "numb", "tired", "exhausted", "pain",
		"hurt", "suffering", "crisis", "suicidal", "self-harm", "cutting", "death", "dying", "end",
		"terrible", "awful", "horrible", "worst", "hate", "angry", "rage", "frustrated", "confused",
	}

	wellnessNegativeHindi = []string{
		"दुखी", "उदास", "चिंतित", "डरा", "भयभीत", "घबराहट", "तनाव", "परेशान", "निराश",
		"असहाय", "अकेला", "खाली", "थका", "दर्द", "पीड़ा", "संकट", "आत्महत्या", "मौत",
		"भयानक", "बुरा", "गुस्सा", "क्रोध", "निराशा", "भ्रम", "परेशानी",
	}
)
