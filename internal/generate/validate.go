package generate

import (
	"strings"

	"pagecraft/internal/core"
	"pagecraft/internal/sanitize"
)

// Field length ceilings from the component schemas.
const (
	heroHeadlineMax    = 60
	heroSubheadlineMax = 120
	heroDescriptionMax = 200
	heroCTATextMax     = 25

	ctaHeadlineMax    = 50
	ctaDescriptionMax = 120
	ctaButtonTextMax  = 20
	ctaSocialProofMax = 80

	maxValueHighlights = 4
)

// Closed enumerations. Values outside a set are replaced with the default,
// never rejected as an error.
var (
	backgroundStyles = enumSet("gradient", "solid", "image")
	textAlignments   = enumSet("left", "center", "right")
	buttonStyles     = enumSet("primary", "secondary", "outline", "text")
	layoutStyles     = enumSet("centered", "split", "banner", "sidebar")
	colorSchemes     = enumSet("primary", "accent", "neutral", "custom")
	conversionGoals  = enumSet("signup", "purchase", "download", "contact", "learn")

	// urgencyIndicators includes "" because the field is nullable.
	urgencyIndicators = enumSet("Limited time", "Popular choice", "Recommended", "")
)

func enumSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
	}
	return set
}

// truncateText bounds text to max characters. Overlong text is cut to
// max-3 characters and given a trailing ellipsis, so the result is exactly
// max characters long.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// ValidateHero normalizes parsed hero content into a fully schema-conformant
// record. Validation never fails: missing fields take defaults, overlong
// text is truncated, out-of-set enums are replaced.
func ValidateHero(hero core.HeroContent, query string) core.HeroContent {
	defaults := DefaultHero(query)

	hero.Headline = truncateText(cleanText(firstNonEmpty(hero.Headline, defaults.Headline)), heroHeadlineMax)
	hero.Subheadline = truncateText(cleanText(firstNonEmpty(hero.Subheadline, defaults.Subheadline)), heroSubheadlineMax)
	hero.Description = truncateText(cleanText(firstNonEmpty(hero.Description, defaults.Description)), heroDescriptionMax)
	hero.CTAText = truncateText(cleanText(firstNonEmpty(hero.CTAText, defaults.CTAText)), heroCTATextMax)
	hero.CTAURL = firstNonEmpty(strings.TrimSpace(hero.CTAURL), defaults.CTAURL)

	if !backgroundStyles[hero.BackgroundStyle] {
		hero.BackgroundStyle = defaults.BackgroundStyle
	}
	if !textAlignments[hero.TextAlignment] {
		hero.TextAlignment = defaults.TextAlignment
	}

	hero.VisualElements = cleanList(hero.VisualElements, 0)
	hero.Keywords = cleanList(hero.Keywords, 0)
	return hero
}

// ValidateCTA normalizes parsed CTA content into a fully schema-conformant
// record, coercing the nested buttons against their own defaults.
func ValidateCTA(cta core.CTAContent, query string) core.CTAContent {
	defaults := DefaultCTA(query)

	cta.Headline = truncateText(cleanText(firstNonEmpty(cta.Headline, defaults.Headline)), ctaHeadlineMax)
	cta.Description = truncateText(cleanText(firstNonEmpty(cta.Description, defaults.Description)), ctaDescriptionMax)
	cta.SocialProof = truncateText(cleanText(firstNonEmpty(cta.SocialProof, defaults.SocialProof)), ctaSocialProofMax)

	cta.PrimaryButton = validateButton(cta.PrimaryButton, defaults.PrimaryButton)
	cta.SecondaryButton = validateButton(cta.SecondaryButton, defaults.SecondaryButton)

	if !urgencyIndicators[cta.UrgencyIndicator] {
		cta.UrgencyIndicator = defaults.UrgencyIndicator
	}
	if !layoutStyles[cta.LayoutStyle] {
		cta.LayoutStyle = defaults.LayoutStyle
	}
	if !colorSchemes[cta.ColorScheme] {
		cta.ColorScheme = defaults.ColorScheme
	}
	if !conversionGoals[cta.ConversionGoal] {
		cta.ConversionGoal = defaults.ConversionGoal
	}

	cta.ValueHighlights = cleanList(cta.ValueHighlights, maxValueHighlights)
	if len(cta.ValueHighlights) == 0 {
		cta.ValueHighlights = defaults.ValueHighlights
	}
	return cta
}

// validateButton coerces a button against its default record.
func validateButton(button, defaults core.ButtonContent) core.ButtonContent {
	button.Text = truncateText(cleanText(firstNonEmpty(button.Text, defaults.Text)), ctaButtonTextMax)
	button.URL = firstNonEmpty(strings.TrimSpace(button.URL), defaults.URL)
	if !buttonStyles[button.Style] {
		button.Style = defaults.Style
	}
	return button
}

// cleanText strips markup and escapes provider-sourced text before it is
// embedded in output.
func cleanText(text string) string {
	return sanitize.EscapeHTML(sanitize.StripTags(text))
}

// cleanList trims, strips and drops empty entries; max of 0 means no cap.
func cleanList(values []string, max int) []string {
	clean := []string{}
	for _, value := range values {
		value = cleanText(strings.TrimSpace(value))
		if value == "" {
			continue
		}
		clean = append(clean, value)
		if max > 0 && len(clean) == max {
			break
		}
	}
	return clean
}
