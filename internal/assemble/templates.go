// Package assemble distributes ranked snippets into a content-type-specific
// page layout and scores the result's confidence.
package assemble

import "strings"

// ContentType identifies a page template selected by query classification.
type ContentType string

const (
	TypeHowTo              ContentType = "how_to"
	TypeToolRecommendation ContentType = "tool_recommendation"
	TypeSafetyTips         ContentType = "safety_tips"
	TypeTroubleshooting    ContentType = "troubleshooting"
	TypeDefault            ContentType = "default"
)

// ContentTemplate holds the layout configuration for one content type. The
// first section is always the introduction; snippets are distributed across
// the remaining sections.
type ContentTemplate struct {
	ID              ContentType
	TitlePrefix     string
	Sections        []string
	ConfidenceBoost float64
}

// GetTemplate returns the pre-configured template for a content type.
// Unknown types fall back to the default template, which always exists.
func GetTemplate(contentType ContentType) ContentTemplate {
	switch contentType {
	case TypeHowTo:
		return ContentTemplate{
			ID:              TypeHowTo,
			TitlePrefix:     "How-To Guide:",
			Sections:        []string{"introduction", "what_you_need", "step_by_step_instructions", "tips_and_warnings"},
			ConfidenceBoost: 0.15,
		}
	case TypeToolRecommendation:
		return ContentTemplate{
			ID:              TypeToolRecommendation,
			TitlePrefix:     "Recommended Tools:",
			Sections:        []string{"introduction", "top_picks", "comparison", "buying_advice"},
			ConfidenceBoost: 0.12,
		}
	case TypeSafetyTips:
		return ContentTemplate{
			ID:              TypeSafetyTips,
			TitlePrefix:     "Safety Guide:",
			Sections:        []string{"introduction", "key_risks", "safety_essentials", "best_practices"},
			ConfidenceBoost: 0.12,
		}
	case TypeTroubleshooting:
		return ContentTemplate{
			ID:              TypeTroubleshooting,
			TitlePrefix:     "Troubleshooting:",
			Sections:        []string{"introduction", "common_causes", "solutions", "prevention"},
			ConfidenceBoost: 0.1,
		}
	default:
		return ContentTemplate{
			ID:              TypeDefault,
			TitlePrefix:     "Guide:",
			Sections:        []string{"introduction", "overview", "details", "summary"},
			ConfidenceBoost: 0.05,
		}
	}
}

// classificationRule maps query keywords to a content type. Rules are
// evaluated in order; the first match wins.
type classificationRule struct {
	contentType ContentType
	keywords    []string
}

var classificationRules = []classificationRule{
	{TypeHowTo, []string{"how to", "how do", "step by step", "tutorial", "guide to", "instructions"}},
	{TypeToolRecommendation, []string{"best", "recommend", "top rated", "which tool", "tool for"}},
	{TypeSafetyTips, []string{"safe", "safety", "danger", "hazard", "precaution"}},
	{TypeTroubleshooting, []string{"fix", "repair", "problem", "not working", "troubleshoot", "broken"}},
}

// ClassifyQuery selects a content type for the query by keyword matching.
// Rules are checked in priority order: how-to, tool recommendation, safety,
// troubleshooting. Queries matching nothing classify as default.
func ClassifyQuery(query string) ContentType {
	lower := strings.ToLower(query)
	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.contentType
			}
		}
	}
	return TypeDefault
}

// sectionHeading converts a section identifier into a display heading,
// e.g. "step_by_step_instructions" -> "Step By Step Instructions".
func sectionHeading(section string) string {
	words := strings.Split(section, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
