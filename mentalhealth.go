package mindtext

import "strings"

// MentalHealthAnalyzer classifies journal-style text in English or Hindi.
//
// Sentiment comes from exact token matches against the wellness lexicon.
// Category, severity and risk come from substring matches against the whole
// lowercased text, so a marker can match inside a longer word.
type MentalHealthAnalyzer struct {
	scorer *lexiconScorer
}

// DefaultMentalHealthConfig returns the mental-health analyzer configuration
func DefaultMentalHealthConfig() ScoringConfig {
	return ScoringConfig{
		Tokenizer: NewJournalTokenizer(),
		Lexicon:   WellnessLexicon(),
		Formula:   DefaultBalanceFormula(),
	}
}

// NewMentalHealthAnalyzer creates a mental-health analyzer
func NewMentalHealthAnalyzer(opts ...AnalyzerOption) *MentalHealthAnalyzer {
	config := DefaultMentalHealthConfig()
	for _, applyOpt := range opts {
		applyOpt(&config)
	}
	return &MentalHealthAnalyzer{scorer: newLexiconScorer(config)}
}

// Analyze runs the full pipeline on text.
func (ma *MentalHealthAnalyzer) Analyze(text string) MentalHealthResult {
	clean := lowerText(strings.TrimSpace(text))
	lang := DetectLanguage(text)

	counts, score := ma.scorer.score(text, lang)
	category := classifyCategory(clean, lang)
	severity := estimateSeverity(clean, counts.Negative, lang)
	risk := assessRisk(clean, severity)

	return MentalHealthResult{
		Sentiment:       score.Polarity,
		Confidence:      score.Confidence,
		Category:        category,
		Severity:        severity,
		RiskLevel:       risk,
		Recommendations: Recommend(score.Polarity, category, severity, risk, lang),
		KeyWords:        counts.KeyWords,
		Language:        lang,
	}
}

var defaultMentalHealthAnalyzer = NewMentalHealthAnalyzer()

// AnalyzeMentalHealth classifies text with the built-in wellness lexicon.
func AnalyzeMentalHealth(text string) MentalHealthResult {
	return defaultMentalHealthAnalyzer.Analyze(text)
}

// ModelAccuracy is the fixed accuracy figure reported for the mental-health
// analyzer. It is a configured constant, not computed from live data.
func ModelAccuracy() float64 {
	return modelAccuracy
}

const modelAccuracy = 89.2
