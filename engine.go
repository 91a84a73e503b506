package mindtext

import "math"

// Counts holds the raw lexicon hits for a single text.
type Counts struct {
	Tokens    []string // Tokens after filtering
	Positive  int      // Tokens found in the positive list
	Negative  int      // Tokens found in the negative list
	Negations int      // Tokens found in the negation list
	KeyWords  []string // Matched tokens, deduplicated, insertion order
}

// Hits returns the number of tokens that matched either polarity list
func (c Counts) Hits() int {
	return c.Positive + c.Negative
}

// Score is the polarity decision produced by a ScoreFormula.
type Score struct {
	Polarity   Polarity
	Confidence int
	Positive   float64
	Negative   float64
}

// ScoreFormula turns lexicon counts into a polarity and a confidence.
type ScoreFormula interface {
	Score(c Counts) Score
}

// ScoringConfig parameterizes the lexicon scoring engine.
type ScoringConfig struct {
	Tokenizer Tokenizer
	Lexicon   *Lexicon
	Formula   ScoreFormula
}

// lexiconScorer performs tokenize -> lexicon count -> score.
type lexiconScorer struct {
	config ScoringConfig
}

func newLexiconScorer(config ScoringConfig) *lexiconScorer {
	return &lexiconScorer{config: config}
}

// count tokenizes text and tallies lexicon hits for the given language
func (s *lexiconScorer) count(text string, lang Language) Counts {
	tokens := s.config.Tokenizer.Tokenize(text)
	c := Counts{Tokens: tokens}

	seen := make(map[string]bool)
	for _, token := range tokens {
		if s.config.Lexicon.IsNegation(token) {
			c.Negations++
		}

		switch s.config.Lexicon.Classify(token, lang) {
		case Positive:
			c.Positive++
		case Negative:
			c.Negative++
		default:
			continue
		}
		if !seen[token] && len(c.KeyWords) < maxKeyWords {
			c.KeyWords = append(c.KeyWords, token)
		}
		seen[token] = true
	}

	if c.KeyWords == nil {
		c.KeyWords = []string{}
	}
	return c
}

// score runs the full pipeline for one text
func (s *lexiconScorer) score(text string, lang Language) (Counts, Score) {
	c := s.count(text, lang)
	return c, s.config.Formula.Score(c)
}

// BalanceFormula scores by the normalized difference between positive and
// negative hits. Equal counts are Neutral.
type BalanceFormula struct {
	BaseConfidence float64
	MaxConfidence  float64
}

// DefaultBalanceFormula returns the mental-health scoring formula
func DefaultBalanceFormula() BalanceFormula {
	return BalanceFormula{BaseConfidence: 50, MaxConfidence: 95}
}

// Score implements ScoreFormula.
func (f BalanceFormula) Score(c Counts) Score {
	pos, neg := float64(c.Positive), float64(c.Negative)

	polarity := Neutral
	if pos > neg {
		polarity = Positive
	} else if neg > pos {
		polarity = Negative
	}

	confidence := f.BaseConfidence
	if total := pos + neg; total > 0 {
		confidence = math.Min(f.BaseConfidence+math.Abs(pos-neg)/total*(100-f.BaseConfidence), f.MaxConfidence)
	}

	return Score{
		Polarity:   polarity,
		Confidence: int(math.Round(confidence)),
		Positive:   pos,
		Negative:   neg,
	}
}

// DensityFormula boosts scores by the share of tokens that are lexicon hits,
// then blends positive and negative mass when negation words are present.
// It has no neutral class: ties resolve to Negative.
type DensityFormula struct {
	DensityFactor  float64 // boost = min(density*DensityFactor, 1)
	NegationWeight float64 // flip = min(negations*NegationWeight, 1)
	BaseConfidence float64
	MaxConfidence  float64
	LongTextTokens int     // Token count above which the long-text boost applies
	LongTextScore  float64 // Total score above which the long-text boost applies
	LongTextBoost  float64
}

// DefaultDensityFormula returns the movie-review scoring formula
func DefaultDensityFormula() DensityFormula {
	return DensityFormula{
		DensityFactor:  2,
		NegationWeight: 0.5,
		BaseConfidence: 50,
		MaxConfidence:  95,
		LongTextTokens: 20,
		LongTextScore:  3,
		LongTextBoost:  1.1,
	}
}

// Score implements ScoreFormula.
func (f DensityFormula) Score(c Counts) Score {
	pos, neg := float64(c.Positive), float64(c.Negative)
	tokenCount := len(c.Tokens)

	// Step 1: density boost
	density := float64(c.Hits()) / float64(maxInt(tokenCount, 1))
	boost := math.Min(density*f.DensityFactor, 1)
	pos *= 1 + boost
	neg *= 1 + boost

	// Step 2: negation blending from a snapshot of both scores
	if c.Negations > 0 {
		flip := math.Min(float64(c.Negations)*f.NegationWeight, 1)
		pos, neg = pos*(1-flip)+neg*flip, neg*(1-flip)+pos*flip
	}

	// Step 3: polarity and confidence
	total := pos + neg
	polarity := Negative
	if pos > neg {
		polarity = Positive
	}

	confidence := f.BaseConfidence
	if total > 0 {
		ratio := math.Max(pos, neg) / total
		confidence = math.Min(f.BaseConfidence+ratio*(100-f.BaseConfidence), f.MaxConfidence)
	}
	if tokenCount > f.LongTextTokens && total > f.LongTextScore {
		confidence = math.Min(confidence*f.LongTextBoost, f.MaxConfidence)
	}

	return Score{
		Polarity:   polarity,
		Confidence: int(math.Round(confidence)),
		Positive:   roundTo(pos, 1),
		Negative:   roundTo(neg, 1),
	}
}

// roundTo rounds x to the given number of decimal places
func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// maxInt returns the maximum of two integers
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
