package mindtext

import (
	"math"
	"sync"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"
)

// vaderThreshold is the compound score beyond which VADER labels text as
// positive or negative. Anything in between is neutral.
const vaderThreshold = 0.20

// EvaluationReport measures both analyzers against the labeled seed datasets.
type EvaluationReport struct {
	Reviews      ReviewEvaluation       `json:"reviews"`
	MentalHealth MentalHealthEvaluation `json:"mentalHealth"`
}

// ReviewEvaluation compares the review analyzer and a VADER baseline with the
// review labels. Accuracies are percentages rounded to one decimal.
type ReviewEvaluation struct {
	Samples          int     `json:"samples"`
	Correct          int     `json:"correct"`
	Accuracy         float64 `json:"accuracy"`
	BaselineCorrect  int     `json:"baselineCorrect"`
	BaselineAccuracy float64 `json:"baselineAccuracy"`
	BaselineNeutral  int     `json:"baselineNeutral"`
	ConfidenceMean   float64 `json:"confidenceMean"`
	ConfidenceStdDev float64 `json:"confidenceStdDev"`
}

// MentalHealthEvaluation compares the mental-health analyzer with the journal
// labels.
type MentalHealthEvaluation struct {
	Samples           int     `json:"samples"`
	SentimentAccuracy float64 `json:"sentimentAccuracy"`
	CategoryAccuracy  float64 `json:"categoryAccuracy"`
	SeverityMAE       float64 `json:"severityMAE"`
	ConfidenceMean    float64 `json:"confidenceMean"`
	ConfidenceStdDev  float64 `json:"confidenceStdDev"`
}

// Building the VADER analyzer parses its lexicon, so it happens once.
var loadVader = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// VaderPolarity labels text with the VADER compound score using the ±0.20
// thresholds.
func VaderPolarity(text string) (float64, Polarity) {
	score := loadVader().PolarityScores(PlainText(text)).Compound

	switch {
	case score >= vaderThreshold:
		return score, Positive
	case score <= -vaderThreshold:
		return score, Negative
	default:
		return score, Neutral
	}
}

// Evaluate runs the default analyzers over the seed datasets.
func Evaluate() EvaluationReport {
	return EvaluationReport{
		Reviews:      evaluateReviews(defaultSentimentAnalyzer, seedReviews),
		MentalHealth: evaluateMentalHealth(defaultMentalHealthAnalyzer, seedMentalHealth),
	}
}

func evaluateReviews(sa *SentimentAnalyzer, reviews []Review) ReviewEvaluation {
	ev := ReviewEvaluation{Samples: len(reviews)}
	if len(reviews) == 0 {
		return ev
	}

	confidences := make([]float64, 0, len(reviews))
	for _, r := range reviews {
		res := sa.Analyze(r.Review)
		if res.Sentiment == r.Sentiment {
			ev.Correct++
		}
		confidences = append(confidences, float64(res.Confidence))

		_, baseline := VaderPolarity(r.Review)
		switch baseline {
		case r.Sentiment:
			ev.BaselineCorrect++
		case Neutral:
			ev.BaselineNeutral++
		}
	}

	ev.Accuracy = percent(ev.Correct, len(reviews))
	ev.BaselineAccuracy = percent(ev.BaselineCorrect, len(reviews))
	ev.ConfidenceMean, ev.ConfidenceStdDev = meanStdDev(confidences)
	return ev
}

func evaluateMentalHealth(ma *MentalHealthAnalyzer, entries []MentalHealthEntry) MentalHealthEvaluation {
	ev := MentalHealthEvaluation{Samples: len(entries)}
	if len(entries) == 0 {
		return ev
	}

	var sentimentHits, categoryHits int
	confidences := make([]float64, 0, len(entries))
	severityErrors := make([]float64, 0, len(entries))
	for _, e := range entries {
		res := ma.Analyze(e.Text)
		if res.Sentiment == e.Sentiment {
			sentimentHits++
		}
		if res.Category == e.Category {
			categoryHits++
		}
		confidences = append(confidences, float64(res.Confidence))
		severityErrors = append(severityErrors, math.Abs(float64(res.Severity-e.Severity)))
	}

	ev.SentimentAccuracy = percent(sentimentHits, len(entries))
	ev.CategoryAccuracy = percent(categoryHits, len(entries))
	ev.SeverityMAE = roundTo(stat.Mean(severityErrors, nil), 2)
	ev.ConfidenceMean, ev.ConfidenceStdDev = meanStdDev(confidences)
	return ev
}

func percent(n, total int) float64 {
	return roundTo(float64(n)/float64(total)*100, 1)
}

// meanStdDev returns the mean and sample standard deviation, both rounded to
// one decimal. A single sample has no spread.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return roundTo(stat.Mean(xs, nil), 1), 0
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return roundTo(mean, 1), roundTo(std, 1)
}
