package provider

import (
	"regexp"
	"strings"
)

// Quality scoring weights. Each dimension contributes up to its cap and the
// total is bounded at 100.
const (
	lengthScoreCap      = 30
	structureScoreCap   = 25
	helpfulnessScoreCap = 25
	readabilityScoreCap = 20

	fullCreditWordCount = 300
)

var (
	headingRegex = regexp.MustCompile(`(?m)^#{1,6}\s`)
	listRegex    = regexp.MustCompile(`(?m)^\s*([-*•]|\d+[.)])\s`)

	helpfulnessMarkers = []string{
		"first", "second", "third", "next", "then", "finally", "step",
		"warning", "caution", "careful", "avoid", "important", "note",
		"for example", "such as", "tip",
	}
)

// ScoreQuality rates generated text 0-100 from length, structure,
// helpfulness markers and readability. It is a cheap heuristic, not a
// substitute for human review.
func ScoreQuality(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	score := lengthScore(trimmed) + structureScore(trimmed) + helpfulnessScore(trimmed) + readabilityScore(trimmed)
	if score > 100 {
		score = 100
	}
	return score
}

// lengthScore gives full credit at 300 words, scaled linearly below.
func lengthScore(text string) int {
	words := len(strings.Fields(text))
	if words >= fullCreditWordCount {
		return lengthScoreCap
	}
	return words * lengthScoreCap / fullCreditWordCount
}

// structureScore rewards headings, lists and paragraph breaks.
func structureScore(text string) int {
	score := 0
	if headingRegex.MatchString(text) {
		score += 10
	}
	if listRegex.MatchString(text) {
		score += 10
	}
	if strings.Contains(text, "\n\n") {
		score += 5
	}
	if score > structureScoreCap {
		score = structureScoreCap
	}
	return score
}

// helpfulnessScore rewards sequential, cautionary and example language.
func helpfulnessScore(text string) int {
	lower := strings.ToLower(text)
	score := 0
	for _, marker := range helpfulnessMarkers {
		if strings.Contains(lower, marker) {
			score += 5
		}
		if score >= helpfulnessScoreCap {
			return helpfulnessScoreCap
		}
	}
	return score
}

// readabilityScore gives full credit when sentences average 20 words or
// fewer, partial credit up to 30.
func readabilityScore(text string) int {
	sentences := regexp.MustCompile(`[.!?]+`).Split(text, -1)
	total, count := 0, 0
	for _, sentence := range sentences {
		words := len(strings.Fields(sentence))
		if words == 0 {
			continue
		}
		total += words
		count++
	}
	if count == 0 {
		return 0
	}

	average := float64(total) / float64(count)
	switch {
	case average <= 20:
		return readabilityScoreCap
	case average <= 30:
		return readabilityScoreCap / 2
	default:
		return 0
	}
}
