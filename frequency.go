package mindtext

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// maxFrequencyWords caps the word-frequency report.
const maxFrequencyWords = 50

// ErrUnknownPolarity is returned when a polarity name is not positive or negative
var ErrUnknownPolarity = errors.New("unknown polarity")

// ParsePolarity converts "positive" or "negative" into a Polarity.
func ParsePolarity(s string) (Polarity, error) {
	switch Polarity(strings.ToLower(strings.TrimSpace(s))) {
	case Positive:
		return Positive, nil
	case Negative:
		return Negative, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolarity, s)
}

// GetWordFrequency counts review-lexicon words of the given polarity across
// texts and returns the 50 most frequent, highest count first. Words with
// equal counts keep the order in which they were first seen.
func GetWordFrequency(texts []string, polarity Polarity) []WordCount {
	return wordFrequency(texts, polarity, NewReviewTokenizer(), ReviewLexicon())
}

func wordFrequency(texts []string, polarity Polarity, tokenizer Tokenizer, lex *Lexicon) []WordCount {
	counts := make(map[string]int)
	var order []string

	for _, text := range texts {
		for _, word := range tokenizer.Tokenize(text) {
			if !lex.Has(word, polarity, English) {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	return topCounts(order, counts, maxFrequencyWords)
}

// ReviewWordFrequency reports word frequency over the seed reviews labeled
// with the given polarity.
func ReviewWordFrequency(polarity Polarity) []WordCount {
	var texts []string
	for _, r := range Reviews() {
		if r.Sentiment == polarity {
			texts = append(texts, r.Review)
		}
	}
	return GetWordFrequency(texts, polarity)
}

// TopTerms returns the n most frequent terms of a corpus after removing stop
// words for the given language. Unlike GetWordFrequency it is not limited to
// lexicon words.
func TopTerms(texts []string, lang Language, n int) []WordCount {
	tokenizer := NewJournalTokenizer()
	if lang == English {
		tokenizer = NewReviewTokenizer()
	}

	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, word := range tokenizer.Tokenize(text) {
			word = strings.Trim(word, termPunctuation)
			if word == "" || isStopWord(word, lang) {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	return topCounts(order, counts, n)
}

// termPunctuation is trimmed from journal tokens, which keep punctuation.
const termPunctuation = ".,!?;:\"'()[]।"

// hindiStopWords covers Hindi, for which bbalet/stopwords ships no list.
var hindiStopWords = map[string]bool{
	"है": true, "हैं": true, "हूं": true, "हूँ": true, "हो": true,
	"था": true, "थी": true, "थे": true,
	"मैं": true, "मुझे": true, "मेरा": true, "मेरी": true, "मेरे": true,
	"हम": true, "आप": true, "तुम": true,
	"यह": true, "वह": true, "ये": true, "वो": true,
	"और": true, "या": true, "भी": true, "तो": true, "ही": true,
	"का": true, "के": true, "की": true, "में": true, "से": true,
	"को": true, "पर": true, "ने": true,
	"रहा": true, "रही": true, "रहे": true,
}

// isStopWord tests a single word against the stop word list of lang.
func isStopWord(word string, lang Language) bool {
	if lang == Hindi {
		return hindiStopWords[word]
	}
	cleaned := strings.TrimSpace(stopwords.CleanString(word, string(lang), false))
	return cleaned == ""
}

// topCounts sorts words by descending count, keeping first-seen order for
// ties, and truncates to n entries.
func topCounts(order []string, counts map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
