package generate

import (
	"strings"

	"pagecraft/internal/core"
)

// fallbackCopy is the intent-keyed canned copy used when generation fails
// entirely. Placeholders ("%s") receive the lower-cased query.
var fallbackHeroCopy = map[core.Intent]struct {
	headline    string
	subheadline string
	ctaText     string
}{
	core.IntentCommercial: {
		headline:    "Find the Right %s",
		subheadline: "Compare options, prices and reviews before you buy.",
		ctaText:     "Shop Options",
	},
	core.IntentEducational: {
		headline:    "Learn %s",
		subheadline: "Guides and tutorials that take you from beginner to confident.",
		ctaText:     "Start Learning",
	},
	core.IntentInformational: {
		headline:    "About %s",
		subheadline: "Clear answers and practical advice, all in one place.",
		ctaText:     "Read More",
	},
	core.IntentNavigational: {
		headline:    "%s",
		subheadline: "Jump straight to what you were looking for.",
		ctaText:     "Go There",
	},
}

var fallbackCTAGoals = map[core.Intent]string{
	core.IntentCommercial:    "purchase",
	core.IntentEducational:   "signup",
	core.IntentInformational: "learn",
	core.IntentNavigational:  "learn",
}

// FallbackHero produces a complete, schema-valid hero component from the
// query and intent alone, without any provider call.
func FallbackHero(query string, intent core.Intent) core.HeroContent {
	copySet, ok := fallbackHeroCopy[intent]
	if !ok {
		copySet = fallbackHeroCopy[core.IntentInformational]
	}

	hero := DefaultHero(query)
	display := titleCase(strings.TrimSpace(query))
	if display == "" {
		display = "Our Content"
	}

	hero.Headline = strings.ReplaceAll(copySet.headline, "%s", display)
	hero.Subheadline = copySet.subheadline
	hero.CTAText = copySet.ctaText
	return ValidateHero(hero, query)
}

// FallbackCTA produces a complete, schema-valid CTA component from the
// query and intent alone.
func FallbackCTA(query string, intent core.Intent) core.CTAContent {
	cta := DefaultCTA(query)
	if goal, ok := fallbackCTAGoals[intent]; ok {
		cta.ConversionGoal = goal
	}
	if intent == core.IntentCommercial {
		cta.PrimaryButton.Text = "See Options"
		cta.UrgencyIndicator = "Popular choice"
	}
	return ValidateCTA(cta, query)
}
