package mindtext

// estimateSeverity maps crisis and intensity markers plus the negative word
// count onto the 1..5 scale. text must already be lowercased.
func estimateSeverity(text string, negative int, lang Language) Severity {
	// Crisis markers short-circuit everything else.
	if containsAny(text, markersFor(crisisMarkers, lang)) {
		return SeverityCrisis
	}

	if containsAny(text, markersFor(severeMarkers, lang)) && negative > 3 {
		return SeveritySevere
	}

	switch {
	case negative > 2:
		return SeverityModerate
	case negative > 1:
		return SeverityMild
	default:
		return SeverityMinimal
	}
}

// assessRisk derives the risk tier. It re-scans text with its own indicator
// list instead of trusting the severity crisis check.
func assessRisk(text string, severity Severity) RiskLevel {
	if containsAny(lowerText(text), riskIndicators) {
		return RiskCrisis
	}

	switch {
	case severity >= SeveritySevere:
		return RiskHigh
	case severity >= SeverityModerate:
		return RiskModerate
	default:
		return RiskLow
	}
}
