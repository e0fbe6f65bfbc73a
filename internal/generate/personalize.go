package generate

import (
	"math/rand"
	"strings"

	"pagecraft/internal/core"
)

// interestCopy holds the canned phrases eligible for an interest.
type interestCopy struct {
	buttonText []string
	highlights []string
}

// interestTable keys personalization copy by user interest. Lookup misses
// leave fields unchanged.
var interestTable = map[string]interestCopy{
	"diy": {
		buttonText: []string{"Start Your Project", "See the Steps"},
		highlights: []string{"Do it yourself and save", "Clear step-by-step instructions"},
	},
	"tools": {
		buttonText: []string{"Compare Tools", "Find Your Tool"},
		highlights: []string{"Hands-on tool reviews", "Picks for every budget"},
	},
	"safety": {
		buttonText: []string{"Read Safety Tips"},
		highlights: []string{"Safety-checked advice", "Know the risks first"},
	},
	"budget": {
		buttonText: []string{"See Budget Options"},
		highlights: []string{"Best value picks", "No-nonsense pricing"},
	},
	"premium": {
		buttonText: []string{"Explore Top Picks"},
		highlights: []string{"Professional-grade quality", "Built to last"},
	},
}

// toneStyle maps an emotional tone to presentation adjustments.
type toneStyle struct {
	colorScheme      string
	textAlignment    string
	urgencyIndicator string
}

var toneTable = map[string]toneStyle{
	"confident":  {colorScheme: "accent", textAlignment: "center", urgencyIndicator: "Limited time"},
	"supportive": {colorScheme: "neutral", textAlignment: "left", urgencyIndicator: "Recommended"},
	"helpful":    {colorScheme: "primary", textAlignment: "left"},
	"efficient":  {colorScheme: "primary", textAlignment: "center", urgencyIndicator: "Popular choice"},
}

// Chooser selects among equally valid canned phrases. It is seeded so
// tests can assert exact output.
type Chooser struct {
	rng *rand.Rand
}

// NewChooser creates a Chooser from a seed.
func NewChooser(seed int64) *Chooser {
	return &Chooser{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one of the options, or "" for an empty list.
func (c *Chooser) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.Intn(len(options))]
}

// Personalizer re-weights component wording using user-interest and tone
// signals.
type Personalizer struct {
	chooser *Chooser
}

// NewPersonalizer creates a Personalizer with the given phrase chooser.
func NewPersonalizer(chooser *Chooser) *Personalizer {
	return &Personalizer{chooser: chooser}
}

// PersonalizeHero rewrites hero fields from the context's interests and
// tone. Interests are consulted strongest-first; the first with matching
// copy wins.
func (p *Personalizer) PersonalizeHero(hero core.HeroContent, gctx core.GenerationContext) core.HeroContent {
	for _, interest := range gctx.Interests {
		copySet, ok := interestTable[strings.ToLower(interest.Name)]
		if !ok {
			continue
		}
		if text := p.chooser.Pick(copySet.buttonText); text != "" {
			hero.CTAText = truncateText(text, heroCTATextMax)
		}
		break
	}

	if style, ok := toneTable[gctx.EmotionalTone]; ok {
		if style.textAlignment != "" {
			hero.TextAlignment = style.textAlignment
		}
	}
	return hero
}

// PersonalizeCTA rewrites CTA fields from the context's interests and tone.
func (p *Personalizer) PersonalizeCTA(cta core.CTAContent, gctx core.GenerationContext) core.CTAContent {
	for _, interest := range gctx.Interests {
		copySet, ok := interestTable[strings.ToLower(interest.Name)]
		if !ok {
			continue
		}
		if text := p.chooser.Pick(copySet.buttonText); text != "" {
			cta.PrimaryButton.Text = truncateText(text, ctaButtonTextMax)
		}
		if highlight := p.chooser.Pick(copySet.highlights); highlight != "" {
			cta.ValueHighlights = prependHighlight(cta.ValueHighlights, highlight)
		}
		break
	}

	if style, ok := toneTable[gctx.EmotionalTone]; ok {
		if style.colorScheme != "" {
			cta.ColorScheme = style.colorScheme
		}
		if style.urgencyIndicator != "" {
			cta.UrgencyIndicator = style.urgencyIndicator
		}
	}
	return cta
}

// prependHighlight puts the personalized highlight first, keeping the list
// deduplicated and within the schema cap.
func prependHighlight(highlights []string, highlight string) []string {
	result := []string{highlight}
	for _, existing := range highlights {
		if existing == highlight {
			continue
		}
		result = append(result, existing)
		if len(result) == maxValueHighlights {
			break
		}
	}
	return result
}
