package mindtext

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Devanagari block bounds.
const (
	devanagariFirst = '\u0900'
	devanagariLast  = '\u097F'
)

// DetectLanguage classifies text as Hindi if it contains at least one
// character from the Devanagari block and as English otherwise.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if r >= devanagariFirst && r <= devanagariLast {
			return Hindi
		}
	}
	return English
}

// LanguageName returns the English display name of a language code, e.g.
// "English" for "en" and "Hindi" for "hi".
func LanguageName(lang Language) string {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return string(lang)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return string(lang)
}

// GetSupportedLanguages returns all languages the detector can produce
func GetSupportedLanguages() []Language {
	return []Language{English, Hindi}
}
