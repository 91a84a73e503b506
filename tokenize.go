package mindtext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// ruleTokenizer lowercases text, optionally blanks out punctuation, splits on
// whitespace and drops short tokens.
type ruleTokenizer struct {
	minLength     int
	stripPunct    bool
	trim          bool
	punctuationRE *regexp.Regexp
}

type TokenizerOptFunc func(*ruleTokenizer)

// UsingMinLength keeps only tokens longer than n characters.
func UsingMinLength(n int) TokenizerOptFunc {
	return func(tokenizer *ruleTokenizer) {
		tokenizer.minLength = n
	}
}

// UsingPunctuationStripping replaces every non-word, non-space character with
// a space before splitting. Word characters are ASCII letters, digits and
// underscore, so non-Latin scripts are blanked out as well.
func UsingPunctuationStripping(strip bool) TokenizerOptFunc {
	return func(tokenizer *ruleTokenizer) {
		tokenizer.stripPunct = strip
	}
}

// UsingTrim trims surrounding whitespace before lowercasing.
func UsingTrim(trim bool) TokenizerOptFunc {
	return func(tokenizer *ruleTokenizer) {
		tokenizer.trim = trim
	}
}

// NewRuleTokenizer builds a tokenizer. With no options it lowercases, splits on
// whitespace and keeps every non-empty token.
func NewRuleTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &ruleTokenizer{punctuationRE: punctuationRE}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// NewReviewTokenizer returns the tokenizer used for movie reviews and word
// frequency: punctuation stripped, tokens of 2 characters or fewer dropped.
func NewReviewTokenizer() Tokenizer {
	return NewRuleTokenizer(UsingPunctuationStripping(true), UsingMinLength(2))
}

// NewJournalTokenizer returns the tokenizer used for mental-health text:
// trimmed, punctuation kept, single-character tokens dropped.
func NewJournalTokenizer() Tokenizer {
	return NewRuleTokenizer(UsingTrim(true), UsingMinLength(1))
}

// Tokenize splits text into a slice of words.
func (t *ruleTokenizer) Tokenize(text string) []string {
	if t.trim {
		text = strings.TrimSpace(text)
	}
	clean := lowerText(text)
	if t.stripPunct {
		clean = t.punctuationRE.ReplaceAllString(clean, " ")
	}

	fields := strings.Fields(clean)
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > t.minLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

var punctuationRE = regexp.MustCompile(`[^\w\s]`)

// lowerText applies full Unicode lowercasing. A Caser holds state, so a
// fresh one is built per call.
func lowerText(s string) string {
	return cases.Lower(language.Und).String(s)
}
