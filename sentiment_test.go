package mindtext

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestSentimentPolarity(t *testing.T) {
	tests := []struct {
		text       string
		polarity   Polarity
		confidence int
		positive   float64
		negative   float64
		desc       string
	}{
		{"great", Positive, 95, 2, 0, "Single positive word, full density boost"},
		{"not great", Negative, 75, 1, 1, "Negation splits the mass evenly and the tie is negative"},
		{"", Negative, 50, 0, 0, "Empty text"},
		{"The movie was boring", Negative, 95, 0, 1.5, "Single negative word"},
		{"This movie is absolutely fantastic!", Positive, 95, 1.5, 0, "Punctuation stripped"},
		{"great acting but boring plot", Negative, 75, 1.8, 1.8, "Balanced mixed review"},
		{"brilliant wonderful superb boring slow", Positive, 80, 6, 4, "Three to two"},
		{"not bad at all", Negative, 75, 0.8, 0.8, "Negated negative still ties"},
	}

	analyzer := NewSentimentAnalyzer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.Analyze(tt.text)
			if got.Sentiment != tt.polarity || got.Confidence != tt.confidence {
				t.Errorf("Text: %q\nExpected: %s at %d\nGot: %s at %d",
					tt.text, tt.polarity, tt.confidence, got.Sentiment, got.Confidence)
			}
			if got.PositiveScore != tt.positive || got.NegativeScore != tt.negative {
				t.Errorf("Text: %q\nExpected scores: %.1f/%.1f\nGot: %.1f/%.1f",
					tt.text, tt.positive, tt.negative, got.PositiveScore, got.NegativeScore)
			}
		})
	}
}

func TestNegationBlendBounds(t *testing.T) {
	formula := DefaultDensityFormula()

	for pos := 0; pos <= 5; pos++ {
		for neg := 0; neg <= 5; neg++ {
			for _, tokenCount := range []int{pos + neg, pos + neg + 3, 25} {
				counts := Counts{Tokens: make([]string, tokenCount), Positive: pos, Negative: neg}
				before := formula.Score(counts)

				for negations := 1; negations <= 3; negations++ {
					counts.Negations = negations
					after := formula.Score(counts)

					lo := math.Min(before.Positive, before.Negative)
					hi := math.Max(before.Positive, before.Negative)
					if after.Positive < lo || after.Positive > hi || after.Negative < lo || after.Negative > hi {
						t.Errorf("pos=%d neg=%d tokens=%d negations=%d\nExpected scores within [%.1f, %.1f]\nGot: %.1f/%.1f",
							pos, neg, tokenCount, negations, lo, hi, after.Positive, after.Negative)
					}

					if before.Positive >= before.Negative && (after.Positive > before.Positive || after.Negative < before.Negative) {
						t.Errorf("pos=%d neg=%d tokens=%d negations=%d\nExpected mass to move from positive to negative\nBefore: %.1f/%.1f\nAfter: %.1f/%.1f",
							pos, neg, tokenCount, negations, before.Positive, before.Negative, after.Positive, after.Negative)
					}
					if before.Negative >= before.Positive && (after.Negative > before.Negative || after.Positive < before.Positive) {
						t.Errorf("pos=%d neg=%d tokens=%d negations=%d\nExpected mass to move from negative to positive\nBefore: %.1f/%.1f\nAfter: %.1f/%.1f",
							pos, neg, tokenCount, negations, before.Positive, before.Negative, after.Positive, after.Negative)
					}

					if diff := math.Abs((after.Positive + after.Negative) - (before.Positive + before.Negative)); diff > 0.2+1e-9 {
						t.Errorf("pos=%d neg=%d tokens=%d negations=%d\nBlending changed the total by %.2f",
							pos, neg, tokenCount, negations, diff)
					}

					if after.Confidence < 50 || after.Confidence > 95 {
						t.Errorf("pos=%d neg=%d tokens=%d negations=%d\nConfidence %d outside [50, 95]",
							pos, neg, tokenCount, negations, after.Confidence)
					}
				}
			}
		}
	}
}

func TestSentimentNeverNeutral(t *testing.T) {
	texts := []string{"", "the", "movie", "great boring", "not", "एक फिल्म", "!!!"}
	for _, text := range texts {
		if got := AnalyzeSentiment(text).Sentiment; got == Neutral {
			t.Errorf("Text: %q\nReview sentiment should never be neutral", text)
		}
	}
}

func TestSentimentConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		"great",
		"not not not great",
		"boring boring boring boring",
		strings.Repeat("excellent superb brilliant ", 20),
		"it was fine I guess",
	}

	for _, text := range texts {
		got := AnalyzeSentiment(text)
		if got.Confidence < 50 || got.Confidence > 95 {
			t.Errorf("Text: %q\nConfidence %d outside [50, 95]", text, got.Confidence)
		}
		if got.PositiveScore < 0 || got.NegativeScore < 0 {
			t.Errorf("Text: %q\nNegative score mass: %.1f/%.1f", text, got.PositiveScore, got.NegativeScore)
		}
	}
}

func TestLongTextBoost(t *testing.T) {
	long := "The film was brilliant and wonderful with superb acting but the ending felt boring and " +
		"the middle section was slow, though we still talked about it for the whole evening after"

	got := AnalyzeSentiment(long)
	if got.WordCount != 29 {
		t.Fatalf("WordCount = %d, want 29", got.WordCount)
	}
	// 3 positive vs 2 negative gives 80 before the long-text boost.
	if got.Confidence != 88 {
		t.Errorf("Confidence = %d, want 88 (80 boosted by 1.1)", got.Confidence)
	}
	if got.Sentiment != Positive {
		t.Errorf("Sentiment = %s, want positive", got.Sentiment)
	}
}

func TestSentimentKeyWords(t *testing.T) {
	tests := []struct {
		text string
		want []string
		desc string
	}{
		{"great great great", []string{"great"}, "Duplicates collapse"},
		{"boring but great", []string{"boring", "great"}, "Insertion order"},
		{"the plot", []string{}, "No hits is empty, not nil"},
		{
			"amazing awesome brilliant excellent fantastic great incredible love perfect wonderful outstanding superb",
			[]string{"amazing", "awesome", "brilliant", "excellent", "fantastic", "great", "incredible", "love", "perfect", "wonderful"},
			"Capped at ten",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := AnalyzeSentiment(tt.text).KeyWords
			if got == nil {
				t.Fatal("KeyWords is nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Text: %q\nExpected: %v\nGot: %v", tt.text, tt.want, got)
			}
		})
	}
}

func TestSentimentIgnoresDevanagari(t *testing.T) {
	// Review tokens are ASCII word characters only.
	got := AnalyzeSentiment("यह फिल्म बहुत अच्छी थी")
	if got.WordCount != 0 {
		t.Errorf("WordCount = %d, want 0", got.WordCount)
	}
	if got.Sentiment != Negative || got.Confidence != 50 {
		t.Errorf("Got %s at %d, want negative at 50", got.Sentiment, got.Confidence)
	}
}

func TestSentimentDeterministic(t *testing.T) {
	text := "A stunning, memorable film. Not boring at all!"
	first := AnalyzeSentiment(text)
	for i := 0; i < 5; i++ {
		if got := AnalyzeSentiment(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Run %d differs:\n%+v\n%+v", i, first, got)
		}
	}
}

func TestSentenceLevelSentiment(t *testing.T) {
	text := "The acting was brilliant. The plot was boring and predictable."

	analyzer := NewSentimentAnalyzer()
	sentences, err := analyzer.AnalyzeSentences(text)
	if err != nil {
		t.Fatalf("AnalyzeSentences: %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %+v", len(sentences), sentences)
	}

	if sentences[0].Result.Sentiment != Positive {
		t.Errorf("First sentence: expected positive, got %s", sentences[0].Result.Sentiment)
	}
	if sentences[1].Result.Sentiment != Negative {
		t.Errorf("Second sentence: expected negative, got %s", sentences[1].Result.Sentiment)
	}
	if sentences[1].Result.NegativeScore != 3.3 {
		t.Errorf("Second sentence: expected negative score 3.3, got %.1f", sentences[1].Result.NegativeScore)
	}
	for i, s := range sentences {
		if !strings.Contains(text, strings.TrimSpace(s.Text)) {
			t.Errorf("Sentence %d text %q not found in input", i, s.Text)
		}
	}

	empty, err := analyzer.AnalyzeSentences("")
	if err != nil {
		t.Fatalf("AnalyzeSentences(\"\"): %v", err)
	}
	if empty == nil {
		t.Error("Expected an empty, non-nil slice for empty input")
	}
}

func TestAnalyzerOptions(t *testing.T) {
	lex := newLexicon("custom",
		map[Language][]string{English: {"sunny"}},
		map[Language][]string{English: {"rainy"}},
		nil)

	analyzer := NewSentimentAnalyzer(UsingLexicon(lex), UsingFormula(DefaultBalanceFormula()))

	tests := []struct {
		text     string
		polarity Polarity
	}{
		{"a sunny day", Positive},
		{"a rainy day", Negative},
		{"sunny then rainy", Neutral},
		{"great", Neutral},
	}

	for _, tt := range tests {
		if got := analyzer.Analyze(tt.text).Sentiment; got != tt.polarity {
			t.Errorf("Text: %q\nExpected: %s\nGot: %s", tt.text, tt.polarity, got)
		}
	}
}

func TestSentimentModelAccuracy(t *testing.T) {
	if got := SentimentModelAccuracy(); got != 87.3 {
		t.Errorf("SentimentModelAccuracy() = %v, want 87.3", got)
	}
}
