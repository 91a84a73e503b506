package mindtext

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Review is a labeled movie review from the seed dataset.
type Review struct {
	ID        int      `json:"id"`
	Review    string   `json:"review"`
	Sentiment Polarity `json:"sentiment"`
	Rating    int      `json:"rating"`
	Movie     string   `json:"movie"`
}

// MentalHealthEntry is a labeled journal entry from the seed dataset.
type MentalHealthEntry struct {
	ID        int      `json:"id"`
	Text      string   `json:"text"`
	Sentiment Polarity `json:"sentiment"`
	Category  Category `json:"category"`
	Severity  Severity `json:"severity"`
	Language  Language `json:"language"`
}

// CrisisResource is a hotline or support service
type CrisisResource struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Share is one bucket of a distribution.
type Share struct {
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"` // Rounded to the nearest integer
}

// Overview summarizes the mental-health seed dataset.
type Overview struct {
	TotalEntries    int              `json:"totalEntries"`
	Languages       map[Language]int `json:"languages"`
	Categories      map[Category]int `json:"categories"`
	Sentiments      map[Polarity]int `json:"sentiments"`
	AverageSeverity float64          `json:"averageSeverity"` // Rounded to one decimal
}

// Reviews returns a copy of the seed review dataset.
func Reviews() []Review {
	return append([]Review(nil), seedReviews...)
}

// MentalHealthEntries returns a copy of the seed mental-health dataset.
func MentalHealthEntries() []MentalHealthEntry {
	return append([]MentalHealthEntry(nil), seedMentalHealth...)
}

// CrisisResources returns the support services for lang, defaulting to the
// English list for languages without their own.
func CrisisResources(lang Language) []CrisisResource {
	_, resources := CrisisResourcesFor(lang)
	return resources
}

// CrisisResourcesFor is CrisisResources that also reports the language of
// the list actually returned.
func CrisisResourcesFor(lang Language) (Language, []CrisisResource) {
	resources, ok := seedCrisisResources[lang]
	if !ok {
		lang = English
		resources = seedCrisisResources[English]
	}
	return lang, append([]CrisisResource(nil), resources...)
}

// CategoryDistribution counts seed entries per category in first-seen order.
func CategoryDistribution() []Share {
	return distribution(seedMentalHealth, func(e MentalHealthEntry) string {
		return string(e.Category)
	})
}

// LanguageDistribution counts seed entries per language, labeled with the
// language's English name.
func LanguageDistribution() []Share {
	return distribution(seedMentalHealth, func(e MentalHealthEntry) string {
		return LanguageName(e.Language)
	})
}

func distribution(entries []MentalHealthEntry, key func(MentalHealthEntry) string) []Share {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		k := key(e)
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	shares := make([]Share, 0, len(order))
	for _, k := range order {
		shares = append(shares, Share{
			Label:      k,
			Count:      counts[k],
			Percentage: int(math.Round(float64(counts[k]) / float64(len(entries)) * 100)),
		})
	}
	return shares
}

// DatasetOverview summarizes the mental-health seed dataset.
func DatasetOverview() Overview {
	ov := Overview{
		TotalEntries: len(seedMentalHealth),
		Languages:    make(map[Language]int),
		Categories:   make(map[Category]int),
		Sentiments:   make(map[Polarity]int),
	}

	severities := make([]float64, 0, len(seedMentalHealth))
	for _, e := range seedMentalHealth {
		ov.Languages[e.Language]++
		ov.Categories[e.Category]++
		ov.Sentiments[e.Sentiment]++
		severities = append(severities, float64(e.Severity))
	}
	if len(severities) > 0 {
		ov.AverageSeverity = roundTo(stat.Mean(severities, nil), 1)
	}
	return ov
}
