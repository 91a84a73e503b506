package mindtext

import (
	"fmt"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SentimentAnalyzer scores movie-review style text as positive or negative.
type SentimentAnalyzer struct {
	scorer *lexiconScorer
}

// AnalyzerOption configures an analyzer at construction time.
type AnalyzerOption func(*ScoringConfig)

// UsingLexicon replaces the analyzer's polarity lexicon.
func UsingLexicon(lex *Lexicon) AnalyzerOption {
	return func(config *ScoringConfig) {
		config.Lexicon = lex
	}
}

// UsingFormula replaces the analyzer's scoring formula.
func UsingFormula(formula ScoreFormula) AnalyzerOption {
	return func(config *ScoringConfig) {
		config.Formula = formula
	}
}

// UsingTokenizer replaces the analyzer's tokenizer.
func UsingTokenizer(tokenizer Tokenizer) AnalyzerOption {
	return func(config *ScoringConfig) {
		config.Tokenizer = tokenizer
	}
}

// DefaultSentimentConfig returns the review analyzer configuration
func DefaultSentimentConfig() ScoringConfig {
	return ScoringConfig{
		Tokenizer: NewReviewTokenizer(),
		Lexicon:   ReviewLexicon(),
		Formula:   DefaultDensityFormula(),
	}
}

// NewSentimentAnalyzer creates a review sentiment analyzer
func NewSentimentAnalyzer(opts ...AnalyzerOption) *SentimentAnalyzer {
	config := DefaultSentimentConfig()
	for _, applyOpt := range opts {
		applyOpt(&config)
	}
	return &SentimentAnalyzer{scorer: newLexiconScorer(config)}
}

// Analyze scores text. Review lexicons are English, so language detection is
// not consulted.
func (sa *SentimentAnalyzer) Analyze(text string) SentimentResult {
	counts, score := sa.scorer.score(text, English)

	return SentimentResult{
		Sentiment:     score.Polarity,
		Confidence:    score.Confidence,
		PositiveScore: score.Positive,
		NegativeScore: score.Negative,
		WordCount:     len(counts.Tokens),
		KeyWords:      counts.KeyWords,
	}
}

// AnalyzeSentences segments text into sentences and scores each one
// independently.
func (sa *SentimentAnalyzer) AnalyzeSentences(text string) ([]SentenceSentiment, error) {
	segmenter, err := loadSegmenter()
	if err != nil {
		return nil, err
	}

	out := []SentenceSentiment{}
	for _, sent := range segmenter.Tokenize(text) {
		out = append(out, SentenceSentiment{
			Text:   sent.Text,
			Start:  sent.Start,
			End:    sent.End,
			Result: sa.Analyze(sent.Text),
		})
	}
	return out, nil
}

// loadSegmenter builds the punkt English sentence tokenizer once.
var loadSegmenter = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return tokenizer, nil
})

var defaultSentimentAnalyzer = NewSentimentAnalyzer()

// AnalyzeSentiment scores text with the built-in review lexicon.
func AnalyzeSentiment(text string) SentimentResult {
	return defaultSentimentAnalyzer.Analyze(text)
}

// SentimentModelAccuracy is the fixed accuracy figure reported for the review
// analyzer. It is a configured constant, not measured from live data; see
// Evaluate for a measurement over the seed reviews.
func SentimentModelAccuracy() float64 {
	return sentimentModelAccuracy
}

const sentimentModelAccuracy = 87.3
