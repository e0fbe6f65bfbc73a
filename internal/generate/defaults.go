package generate

import (
	"regexp"
	"strings"

	"pagecraft/internal/core"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a query into a URL path segment.
func slugify(query string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(query)), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "search"
	}
	return slug
}

// titleCase upper-cases the first letter of each word. Deterministic and
// ASCII-oriented, which matches the search-term inputs it sees.
func titleCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// DefaultHero returns the complete default hero record for a query. Every
// schema field is populated; the validator merges parsed content over it.
func DefaultHero(query string) core.HeroContent {
	display := titleCase(strings.TrimSpace(query))
	if display == "" {
		display = "Our Content"
	}

	return core.HeroContent{
		Headline:        truncateText(display, heroHeadlineMax),
		Subheadline:     truncateText("Everything you need to know about "+strings.ToLower(display), heroSubheadlineMax),
		Description:     truncateText("Explore our guides, tips and recommendations for "+strings.ToLower(display)+", written by people who have done it themselves.", heroDescriptionMax),
		CTAText:         "Learn More",
		CTAURL:          "/" + slugify(query),
		BackgroundStyle: "gradient",
		TextAlignment:   "center",
		VisualElements:  []string{},
		Keywords:        []string{},
	}
}

// DefaultCTA returns the complete default CTA record for a query.
func DefaultCTA(query string) core.CTAContent {
	display := strings.ToLower(strings.TrimSpace(query))
	if display == "" {
		display = "this topic"
	}

	return core.CTAContent{
		Headline:    truncateText("Ready to get started with "+display+"?", ctaHeadlineMax),
		Description: truncateText("Our resources cover "+display+" from first steps to finishing touches.", ctaDescriptionMax),
		PrimaryButton: core.ButtonContent{
			Text:  "Get Started",
			URL:   "/" + slugify(query),
			Style: "primary",
		},
		SecondaryButton: core.ButtonContent{
			Text:  "Browse Guides",
			URL:   "/guides",
			Style: "secondary",
		},
		UrgencyIndicator: "",
		ValueHighlights:  []string{"Practical advice", "Step-by-step guides"},
		SocialProof:      "Trusted by thousands of readers every month",
		LayoutStyle:      "centered",
		ColorScheme:      "primary",
		ConversionGoal:   "learn",
	}
}
