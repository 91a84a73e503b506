package mindtext

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (ws wordSet) has(word string) bool {
	_, ok := ws[word]
	return ok
}

// Lexicon manages polarity word lists per language.
//
// A Lexicon is never modified after construction, so a single instance may be
// shared by any number of goroutines. Membership tests are exact: a token
// matches only if it equals a stored word.
type Lexicon struct {
	name      string
	positive  map[Language]wordSet
	negative  map[Language]wordSet
	negations wordSet
}

// ExternalLexicon represents the JSON structure for external lexicon files
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages"`
}

// LanguageLexicon contains the word lists for a specific language
type LanguageLexicon struct {
	Positive  []string `json:"positive,omitempty"`
	Negative  []string `json:"negative,omitempty"`
	Negations []string `json:"negations,omitempty"`
}

func newLexicon(name string, positive, negative map[Language][]string, negations []string) *Lexicon {
	lex := &Lexicon{
		name:      name,
		positive:  make(map[Language]wordSet, len(positive)),
		negative:  make(map[Language]wordSet, len(negative)),
		negations: newWordSet(negations...),
	}
	for lang, words := range positive {
		lex.positive[lang] = newWordSet(words...)
	}
	for lang, words := range negative {
		lex.negative[lang] = newWordSet(words...)
	}
	return lex
}

// ReviewLexicon returns the built-in movie-review lexicon (English only).
func ReviewLexicon() *Lexicon {
	return reviewLexicon
}

// WellnessLexicon returns the built-in bilingual mental-health lexicon.
func WellnessLexicon() *Lexicon {
	return wellnessLexicon
}

var (
	reviewLexicon = newLexicon("review",
		map[Language][]string{English: reviewPositiveWords},
		map[Language][]string{English: reviewNegativeWords},
		negationWords)

	wellnessLexicon = newLexicon("wellness",
		map[Language][]string{English: wellnessPositiveEnglish, Hindi: wellnessPositiveHindi},
		map[Language][]string{English: wellnessNegativeEnglish, Hindi: wellnessNegativeHindi},
		nil)
)

// Name returns the lexicon's name
func (l *Lexicon) Name() string {
	return l.name
}

// sets returns the polarity sets for lang, falling back to English when the
// lexicon has no entries for it.
func (l *Lexicon) sets(lang Language) (wordSet, wordSet) {
	pos, okPos := l.positive[lang]
	neg, okNeg := l.negative[lang]
	if !okPos && !okNeg {
		return l.positive[English], l.negative[English]
	}
	return pos, neg
}

// Classify returns the polarity of a single token. Positive is checked
// before negative; tokens in neither list are Neutral.
func (l *Lexicon) Classify(word string, lang Language) Polarity {
	pos, neg := l.sets(lang)
	if pos.has(word) {
		return Positive
	}
	if neg.has(word) {
		return Negative
	}
	return Neutral
}

// Has reports whether word is in the lexicon for the given polarity
func (l *Lexicon) Has(word string, p Polarity, lang Language) bool {
	pos, neg := l.sets(lang)
	switch p {
	case Positive:
		return pos.has(word)
	case Negative:
		return neg.has(word)
	}
	return false
}

// IsNegation checks if a token is a negation word
func (l *Lexicon) IsNegation(word string) bool {
	return l.negations.has(word)
}

// Words returns the sorted word list for a polarity and language.
func (l *Lexicon) Words(p Polarity, lang Language) []string {
	pos, neg := l.sets(lang)
	var set wordSet
	switch p {
	case Positive:
		set = pos
	case Negative:
		set = neg
	default:
		return nil
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Size returns the number of polarity words across all languages
func (l *Lexicon) Size() int {
	n := 0
	for _, set := range l.positive {
		n += len(set)
	}
	for _, set := range l.negative {
		n += len(set)
	}
	return n
}

// clone returns a deep copy so merges never touch shared built-ins.
func (l *Lexicon) clone() *Lexicon {
	c := &Lexicon{
		name:      l.name,
		positive:  make(map[Language]wordSet, len(l.positive)),
		negative:  make(map[Language]wordSet, len(l.negative)),
		negations: make(wordSet, len(l.negations)),
	}
	for lang, set := range l.positive {
		c.positive[lang] = make(wordSet, len(set))
		for w := range set {
			c.positive[lang][w] = struct{}{}
		}
	}
	for lang, set := range l.negative {
		c.negative[lang] = make(wordSet, len(set))
		for w := range set {
			c.negative[lang][w] = struct{}{}
		}
	}
	for w := range l.negations {
		c.negations[w] = struct{}{}
	}
	return c
}

// LoadExternalLexicon returns a copy of base extended with the words found
// in the JSON file at path. The base lexicon is left untouched.
func LoadExternalLexicon(base *Lexicon, path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	lex := base.clone()
	for key, langData := range external.Languages {
		lex.mergeLanguageData(languageFromJSONKey(key), langData)
	}
	return lex, nil
}

// languageFromJSONKey accepts both ISO codes and English language names
func languageFromJSONKey(key string) Language {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "en", "english":
		return English
	case "hi", "hindi":
		return Hindi
	default:
		return Language(strings.ToLower(key))
	}
}

// mergeLanguageData merges external language data with existing lexicon
func (l *Lexicon) mergeLanguageData(lang Language, data LanguageLexicon) {
	if len(data.Positive) > 0 && l.positive[lang] == nil {
		l.positive[lang] = make(wordSet)
	}
	for _, w := range data.Positive {
		if w = normalizeMarker(w); w != "" {
			l.positive[lang][w] = struct{}{}
		}
	}

	if len(data.Negative) > 0 && l.negative[lang] == nil {
		l.negative[lang] = make(wordSet)
	}
	for _, w := range data.Negative {
		if w = normalizeMarker(w); w != "" {
			l.negative[lang][w] = struct{}{}
		}
	}

	for _, w := range data.Negations {
		if w = normalizeMarker(w); w != "" {
			l.negations[w] = struct{}{}
		}
	}
}

// normalizeMarker enforces the lowercase invariant on stored words
func normalizeMarker(w string) string {
	return lowerText(strings.TrimSpace(w))
}
