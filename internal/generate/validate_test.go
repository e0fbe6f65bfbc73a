package generate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"pagecraft/internal/core"
)

func TestValidateHeroEmptyRecordIsFullyPopulated(t *testing.T) {
	hero := ValidateHero(core.HeroContent{}, "deck staining")

	if hero.Headline == "" || hero.Subheadline == "" || hero.Description == "" {
		t.Errorf("Expected all text fields populated, got %+v", hero)
	}
	if hero.CTAText == "" || hero.CTAURL == "" {
		t.Errorf("Expected CTA fields populated, got %+v", hero)
	}
	if !backgroundStyles[hero.BackgroundStyle] {
		t.Errorf("Expected a valid background style, got %q", hero.BackgroundStyle)
	}
	if !textAlignments[hero.TextAlignment] {
		t.Errorf("Expected a valid text alignment, got %q", hero.TextAlignment)
	}
	if hero.VisualElements == nil || hero.Keywords == nil {
		t.Errorf("Expected non-nil slices, got %+v", hero)
	}
}

func TestValidateHeroTruncatesOverlongText(t *testing.T) {
	long := strings.Repeat("a", heroHeadlineMax+50)
	hero := ValidateHero(core.HeroContent{Headline: long}, "decks")

	if utf8.RuneCountInString(hero.Headline) != heroHeadlineMax {
		t.Errorf("Expected headline of exactly %d characters, got %d",
			heroHeadlineMax, utf8.RuneCountInString(hero.Headline))
	}
	if !strings.HasSuffix(hero.Headline, "...") {
		t.Errorf("Expected a trailing ellipsis, got %q", hero.Headline)
	}
}

func TestValidateHeroReplacesUnknownEnums(t *testing.T) {
	hero := ValidateHero(core.HeroContent{
		Headline:        "Deck Staining Done Right",
		BackgroundStyle: "sparkly",
		TextAlignment:   "justified",
	}, "deck staining")

	if hero.BackgroundStyle != "gradient" {
		t.Errorf("Expected the default background style, got %q", hero.BackgroundStyle)
	}
	if hero.TextAlignment != "center" {
		t.Errorf("Expected the default text alignment, got %q", hero.TextAlignment)
	}
}

func TestValidateHeroStripsMarkup(t *testing.T) {
	hero := ValidateHero(core.HeroContent{
		Headline: `<script>alert("x")</script>Safe Deck Staining`,
	}, "deck staining")

	if strings.Contains(hero.Headline, "<script>") || strings.Contains(hero.Headline, "alert") {
		t.Errorf("Expected script content removed, got %q", hero.Headline)
	}
	if !strings.Contains(hero.Headline, "Safe Deck Staining") {
		t.Errorf("Expected the text content kept, got %q", hero.Headline)
	}
}

func TestValidateCTAEmptyRecordIsFullyPopulated(t *testing.T) {
	cta := ValidateCTA(core.CTAContent{}, "tile grouting")

	if cta.Headline == "" || cta.Description == "" || cta.SocialProof == "" {
		t.Errorf("Expected all text fields populated, got %+v", cta)
	}
	if cta.PrimaryButton.Text == "" || cta.PrimaryButton.URL == "" {
		t.Errorf("Expected a populated primary button, got %+v", cta.PrimaryButton)
	}
	if cta.SecondaryButton.Text == "" || cta.SecondaryButton.URL == "" {
		t.Errorf("Expected a populated secondary button, got %+v", cta.SecondaryButton)
	}
	if !buttonStyles[cta.PrimaryButton.Style] || !buttonStyles[cta.SecondaryButton.Style] {
		t.Errorf("Expected valid button styles, got %+v", cta)
	}
	if !layoutStyles[cta.LayoutStyle] || !colorSchemes[cta.ColorScheme] || !conversionGoals[cta.ConversionGoal] {
		t.Errorf("Expected valid enum fields, got %+v", cta)
	}
	if !urgencyIndicators[cta.UrgencyIndicator] {
		t.Errorf("Expected a valid urgency indicator, got %q", cta.UrgencyIndicator)
	}
	if len(cta.ValueHighlights) == 0 {
		t.Error("Expected default value highlights for an empty record")
	}
}

func TestValidateCTATruncationEndsWithEllipsis(t *testing.T) {
	long := strings.Repeat("b", ctaHeadlineMax+50)
	cta := ValidateCTA(core.CTAContent{Headline: long}, "tiles")

	if utf8.RuneCountInString(cta.Headline) != ctaHeadlineMax {
		t.Errorf("Expected headline of exactly %d characters, got %d",
			ctaHeadlineMax, utf8.RuneCountInString(cta.Headline))
	}
	if !strings.HasSuffix(cta.Headline, "...") {
		t.Errorf("Expected a trailing ellipsis, got %q", cta.Headline)
	}
}

func TestValidateCTACapsValueHighlights(t *testing.T) {
	cta := ValidateCTA(core.CTAContent{
		ValueHighlights: []string{"one", "two", "", "three", "four", "five"},
	}, "tiles")

	if len(cta.ValueHighlights) != maxValueHighlights {
		t.Errorf("Expected %d highlights, got %v", maxValueHighlights, cta.ValueHighlights)
	}
	for _, highlight := range cta.ValueHighlights {
		if highlight == "" {
			t.Error("Expected empty highlights dropped")
		}
	}
}

func TestValidateCTAUnknownUrgencyReplaced(t *testing.T) {
	cta := ValidateCTA(core.CTAContent{UrgencyIndicator: "ACT NOW!!!"}, "tiles")

	if !urgencyIndicators[cta.UrgencyIndicator] {
		t.Errorf("Expected urgency coerced into the allowed set, got %q", cta.UrgencyIndicator)
	}
}

func TestTruncateTextShortInputUnchanged(t *testing.T) {
	if got := truncateText("short", 60); got != "short" {
		t.Errorf("Expected short text unchanged, got %q", got)
	}
}

func TestTruncateTextMultibyteSafe(t *testing.T) {
	long := strings.Repeat("é", 70)
	got := truncateText(long, 60)
	if utf8.RuneCountInString(got) != 60 {
		t.Errorf("Expected exactly 60 runes, got %d", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Error("Expected valid UTF-8 after truncation")
	}
}
