package mindtext

// Language represents a detected input language
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	// UnknownLanguage is part of the result type but DetectLanguage never
	// returns it: every input is classified as either Hindi or English.
	UnknownLanguage Language = "unknown"
)

// Polarity represents sentiment categories
type Polarity string

const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
	Neutral  Polarity = "neutral"
)

// Category is the topical class assigned to mental-health text
type Category string

const (
	CategoryAnxiety    Category = "anxiety"
	CategoryDepression Category = "depression"
	CategoryStress     Category = "stress"
	CategoryWellbeing  Category = "wellbeing"
	CategorySupport    Category = "support"

	// CategoryUnknown is declared for completeness. The classifier always
	// falls back to stress or wellbeing, so it is never produced.
	CategoryUnknown Category = "unknown"
)

// Severity is a 1 (mild) to 5 (crisis) intensity score
type Severity int

const (
	SeverityMinimal  Severity = 1
	SeverityMild     Severity = 2
	SeverityModerate Severity = 3
	SeveritySevere   Severity = 4
	SeverityCrisis   Severity = 5
)

// RiskLevel is the four-tier escalation label
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCrisis   RiskLevel = "crisis"
)

// SentimentResult is the output of the review sentiment analyzer.
type SentimentResult struct {
	Sentiment     Polarity `json:"sentiment"`     // Positive or Negative, never Neutral
	Confidence    int      `json:"confidence"`    // 50..95
	PositiveScore float64  `json:"positiveScore"` // Rounded to one decimal
	NegativeScore float64  `json:"negativeScore"` // Rounded to one decimal
	WordCount     int      `json:"wordCount"`     // Tokens after filtering
	KeyWords      []string `json:"keyWords"`      // Matched lexicon words, at most 10
}

// MentalHealthResult is the output of the mental-health analyzer.
type MentalHealthResult struct {
	Sentiment       Polarity  `json:"sentiment"`
	Confidence      int       `json:"confidence"`
	Category        Category  `json:"category"`
	Severity        Severity  `json:"severity"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Recommendations []string  `json:"recommendations"`
	KeyWords        []string  `json:"keyWords"`
	Language        Language  `json:"language"`
}

// SentenceSentiment pairs a segmented sentence with its review score.
type SentenceSentiment struct {
	Text   string          `json:"text"`
	Start  int             `json:"start"`
	End    int             `json:"end"`
	Result SentimentResult `json:"result"`
}

// WordCount is a single word-frequency entry
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// maxKeyWords caps the matched words reported per analysis.
const maxKeyWords = 10
