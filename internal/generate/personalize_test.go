package generate

import (
	"reflect"
	"testing"

	"pagecraft/internal/core"
)

func diyContext() core.GenerationContext {
	return BuildContext(Request{
		Query:  "building a workbench",
		Intent: core.IntentEducational,
		Interests: []core.Interest{
			{Name: "diy", Weight: 0.9},
			{Name: "tools", Weight: 0.4},
		},
	})
}

func TestPersonalizeHeroUsesStrongestInterest(t *testing.T) {
	p := NewPersonalizer(NewChooser(1))
	hero := ValidateHero(core.HeroContent{}, "building a workbench")

	got := p.PersonalizeHero(hero, diyContext())

	options := interestTable["diy"].buttonText
	found := false
	for _, option := range options {
		if got.CTAText == option {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected CTA text from the diy copy set %v, got %q", options, got.CTAText)
	}
}

func TestPersonalizeHeroAppliesToneAlignment(t *testing.T) {
	p := NewPersonalizer(NewChooser(1))
	hero := ValidateHero(core.HeroContent{}, "building a workbench")

	// Educational intent carries a supportive tone, which left-aligns.
	got := p.PersonalizeHero(hero, diyContext())
	if got.TextAlignment != "left" {
		t.Errorf("Expected left alignment for a supportive tone, got %q", got.TextAlignment)
	}
}

func TestPersonalizeDeterministicForSameSeed(t *testing.T) {
	gctx := diyContext()
	hero := ValidateHero(core.HeroContent{}, "building a workbench")
	cta := ValidateCTA(core.CTAContent{}, "building a workbench")

	firstHero := NewPersonalizer(NewChooser(42)).PersonalizeHero(hero, gctx)
	secondHero := NewPersonalizer(NewChooser(42)).PersonalizeHero(hero, gctx)
	if !reflect.DeepEqual(firstHero, secondHero) {
		t.Errorf("Expected identical heroes for the same seed:\n%+v\n%+v", firstHero, secondHero)
	}

	firstCTA := NewPersonalizer(NewChooser(42)).PersonalizeCTA(cta, gctx)
	secondCTA := NewPersonalizer(NewChooser(42)).PersonalizeCTA(cta, gctx)
	if !reflect.DeepEqual(firstCTA, secondCTA) {
		t.Errorf("Expected identical CTAs for the same seed:\n%+v\n%+v", firstCTA, secondCTA)
	}
}

func TestPersonalizeUnknownInterestLeavesContentUnchanged(t *testing.T) {
	p := NewPersonalizer(NewChooser(7))
	gctx := BuildContext(Request{
		Query:     "stargazing",
		Intent:    core.IntentInformational,
		Interests: []core.Interest{{Name: "astronomy", Weight: 0.8}},
	})
	hero := ValidateHero(core.HeroContent{}, "stargazing")

	got := p.PersonalizeHero(hero, gctx)
	if got.CTAText != hero.CTAText {
		t.Errorf("Expected CTA text unchanged for an unknown interest, got %q", got.CTAText)
	}
}

func TestPersonalizeCTAPrependsInterestHighlight(t *testing.T) {
	p := NewPersonalizer(NewChooser(3))
	cta := ValidateCTA(core.CTAContent{}, "building a workbench")

	got := p.PersonalizeCTA(cta, diyContext())

	if len(got.ValueHighlights) == 0 {
		t.Fatal("Expected value highlights")
	}
	options := interestTable["diy"].highlights
	found := false
	for _, option := range options {
		if got.ValueHighlights[0] == option {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the first highlight from the diy set %v, got %q", options, got.ValueHighlights[0])
	}
	if len(got.ValueHighlights) > maxValueHighlights {
		t.Errorf("Expected at most %d highlights, got %v", maxValueHighlights, got.ValueHighlights)
	}
}

func TestPersonalizeCTAAppliesToneStyle(t *testing.T) {
	p := NewPersonalizer(NewChooser(3))
	cta := ValidateCTA(core.CTAContent{}, "building a workbench")

	// Supportive tone: neutral colors, a gentle recommendation marker.
	got := p.PersonalizeCTA(cta, diyContext())
	if got.ColorScheme != "neutral" {
		t.Errorf("Expected the neutral color scheme, got %q", got.ColorScheme)
	}
	if got.UrgencyIndicator != "Recommended" {
		t.Errorf("Expected the Recommended indicator, got %q", got.UrgencyIndicator)
	}
}

func TestChooserEmptyOptions(t *testing.T) {
	if got := NewChooser(1).Pick(nil); got != "" {
		t.Errorf("Expected empty string for no options, got %q", got)
	}
}

func TestPrependHighlightDeduplicates(t *testing.T) {
	got := prependHighlight([]string{"a", "b", "a"}, "a")
	expected := []string{"a", "b"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
