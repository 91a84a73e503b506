package mindtext

import "strings"

// classifyCategory assigns the first category, in priority order, whose
// markers occur anywhere in text. text must already be lowercased.
func classifyCategory(text string, lang Language) Category {
	for _, rule := range categoryRules {
		if containsAny(text, markersFor(rule.markers, lang)) {
			return rule.category
		}
	}

	// No marker matched: lean on a handful of plainly negative words.
	for _, word := range strings.Fields(text) {
		if fallbackNegatives.has(word) {
			return CategoryStress
		}
	}
	return CategoryWellbeing
}

// ClassifyCategory returns the topical category of text.
func ClassifyCategory(text string) Category {
	clean := lowerText(strings.TrimSpace(text))
	return classifyCategory(clean, DetectLanguage(text))
}
