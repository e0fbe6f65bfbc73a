package generate

import (
	"fmt"
	"strings"

	"pagecraft/internal/core"
)

// promptField describes one field of a component's output schema for the
// provider: name, semantic purpose and a character-length ceiling.
type promptField struct {
	name    string
	purpose string
	maxLen  int
}

var heroPromptFields = []promptField{
	{"headline", "attention-grabbing headline for the search term", 60},
	{"subheadline", "supporting statement expanding on the headline", 120},
	{"description", "short paragraph describing the page's value", 200},
	{"cta_text", "call-to-action button label", 25},
	{"cta_url", "relative URL the button links to", 0},
	{"background_style", "one of: gradient, solid, image", 0},
	{"text_alignment", "one of: left, center, right", 0},
	{"visual_elements", "array of suggested visual treatments", 0},
	{"keywords", "array of keywords the copy targets", 0},
}

var ctaPromptFields = []promptField{
	{"headline", "compelling call-to-action headline", 50},
	{"description", "supporting sentence for the offer", 120},
	{"primary_button", `object {"text" (max 20 chars), "url", "style": primary|secondary|outline|text}`, 0},
	{"secondary_button", "object with the same shape as primary_button", 0},
	{"urgency_indicator", "one of: Limited time, Popular choice, Recommended, null", 0},
	{"value_highlights", "array of up to 4 short benefit phrases", 0},
	{"social_proof", "one line of social proof", 80},
	{"layout_style", "one of: centered, split, banner, sidebar", 0},
	{"color_scheme", "one of: primary, accent, neutral, custom", 0},
	{"conversion_goal", "one of: signup, purchase, download, contact, learn", 0},
}

// BuildComponentPrompt renders a generation context into a natural-language
// brief plus an explicit field-by-field output schema for the component
// type.
func BuildComponentPrompt(componentType core.ComponentType, gctx core.GenerationContext) string {
	var prompt strings.Builder

	switch componentType {
	case core.ComponentCTA:
		prompt.WriteString("Write the copy for a call-to-action section on a web page.\n\n")
	default:
		prompt.WriteString("Write the copy for a hero banner at the top of a web page.\n\n")
	}

	prompt.WriteString(fmt.Sprintf("The visitor searched for: %q\n", gctx.Query))
	prompt.WriteString(fmt.Sprintf("Searcher intent: %s (funnel stage: %s)\n", gctx.Intent, gctx.FunnelStage))
	prompt.WriteString(fmt.Sprintf("Emotional tone: %s\n", gctx.EmotionalTone))
	prompt.WriteString(fmt.Sprintf("Urgency level: %s\n", gctx.UrgencyLevel))
	prompt.WriteString(fmt.Sprintf("The copy should drive the visitor to: %s\n", gctx.TargetAction))

	if len(gctx.Themes) > 0 {
		prompt.WriteString(fmt.Sprintf("Site themes to stay consistent with: %s\n", strings.Join(gctx.Themes, ", ")))
	}
	if len(gctx.ConversionGoals) > 0 {
		prompt.WriteString(fmt.Sprintf("Conversion opportunities on this site: %s\n", strings.Join(gctx.ConversionGoals, ", ")))
	}
	if len(gctx.CompetitiveKeywords) > 0 {
		prompt.WriteString(fmt.Sprintf("Keywords competing pages use: %s\n", strings.Join(gctx.CompetitiveKeywords, ", ")))
	}
	if len(gctx.Interests) > 0 {
		names := make([]string, len(gctx.Interests))
		for i, interest := range gctx.Interests {
			names[i] = interest.Name
		}
		prompt.WriteString(fmt.Sprintf("The visitor has shown interest in: %s\n", strings.Join(names, ", ")))
	}

	prompt.WriteString("\nRespond with ONLY a JSON object containing these fields:\n")
	for _, field := range promptFields(componentType) {
		if field.maxLen > 0 {
			prompt.WriteString(fmt.Sprintf("- %s: %s (max %d characters)\n", field.name, field.purpose, field.maxLen))
		} else {
			prompt.WriteString(fmt.Sprintf("- %s: %s\n", field.name, field.purpose))
		}
	}
	prompt.WriteString("\nDo not include any text outside the JSON object.\n")

	return prompt.String()
}

func promptFields(componentType core.ComponentType) []promptField {
	if componentType == core.ComponentCTA {
		return ctaPromptFields
	}
	return heroPromptFields
}
