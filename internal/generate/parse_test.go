package generate

import (
	"strings"
	"testing"
)

func TestParseHeroEmptyReplyIsError(t *testing.T) {
	if _, err := ParseHero("", "garden sheds"); err == nil {
		t.Error("Expected an error for an empty reply")
	}
	if _, err := ParseHero("  \n\t ", "garden sheds"); err == nil {
		t.Error("Expected an error for a whitespace-only reply")
	}
}

func TestParseHeroReadsJSONObject(t *testing.T) {
	raw := `Here is the component you asked for:
{"headline": "Build a Garden Shed", "subheadline": "From foundation to roof in one weekend", "cta_text": "See the Plans"}
Let me know if you need changes.`

	hero, err := ParseHero(raw, "garden sheds")
	if err != nil {
		t.Fatalf("ParseHero failed: %v", err)
	}
	if hero.Headline != "Build a Garden Shed" {
		t.Errorf("Expected the JSON headline, got %q", hero.Headline)
	}
	if hero.Subheadline != "From foundation to roof in one weekend" {
		t.Errorf("Expected the JSON subheadline, got %q", hero.Subheadline)
	}
	if hero.CTAText != "See the Plans" {
		t.Errorf("Expected the JSON cta_text, got %q", hero.CTAText)
	}
}

func TestParseHeroFillsMissingFieldsFromDefaults(t *testing.T) {
	hero, err := ParseHero(`{"headline": "Sharpen Your Chisels"}`, "chisel sharpening")
	if err != nil {
		t.Fatalf("ParseHero failed: %v", err)
	}

	if hero.Headline != "Sharpen Your Chisels" {
		t.Errorf("Expected the provided headline, got %q", hero.Headline)
	}
	if hero.Subheadline == "" || hero.Description == "" || hero.CTAText == "" || hero.CTAURL == "" {
		t.Errorf("Expected defaults for missing fields, got %+v", hero)
	}
	if hero.BackgroundStyle != "gradient" {
		t.Errorf("Expected the default background style, got %q", hero.BackgroundStyle)
	}
}

func TestParseHeroJSONWithBracesInStrings(t *testing.T) {
	hero, err := ParseHero(`{"headline": "Use {curly} braces safely"}`, "templating")
	if err != nil {
		t.Fatalf("ParseHero failed: %v", err)
	}
	if hero.Headline != "Use {curly} braces safely" {
		t.Errorf("Expected braces inside strings preserved, got %q", hero.Headline)
	}
}

func TestParseHeroFallsBackToLineBands(t *testing.T) {
	raw := strings.Join([]string{
		"# Painting Kitchen Cabinets Right", // 31 chars, headline band
		"A full walkthrough of prep, priming and painting for a factory finish.", // subheadline band
	}, "\n")

	hero, err := ParseHero(raw, "painting cabinets")
	if err != nil {
		t.Fatalf("ParseHero failed: %v", err)
	}
	if hero.Headline != "Painting Kitchen Cabinets Right" {
		t.Errorf("Expected the first short line as headline, got %q", hero.Headline)
	}
	if hero.Subheadline != "A full walkthrough of prep, priming and painting for a factory finish." {
		t.Errorf("Expected the longer line as subheadline, got %q", hero.Subheadline)
	}
}

func TestParseCTAReadsJSONObject(t *testing.T) {
	raw := `{"headline": "Start Your First Project", "description": "Everything you need to plan, budget and build with confidence.", "primary_button": {"text": "Get the Plans", "url": "/plans", "style": "primary"}, "conversion_goal": "signup"}`

	cta, err := ParseCTA(raw, "woodworking projects")
	if err != nil {
		t.Fatalf("ParseCTA failed: %v", err)
	}
	if cta.Headline != "Start Your First Project" {
		t.Errorf("Expected the JSON headline, got %q", cta.Headline)
	}
	if cta.PrimaryButton.Text != "Get the Plans" || cta.PrimaryButton.URL != "/plans" {
		t.Errorf("Expected the JSON primary button, got %+v", cta.PrimaryButton)
	}
	if cta.ConversionGoal != "signup" {
		t.Errorf("Expected the JSON conversion goal, got %q", cta.ConversionGoal)
	}
}

func TestParseCTANullUrgencyKeepsDefault(t *testing.T) {
	cta, err := ParseCTA(`{"headline": "Join Thousands of Makers", "urgency_indicator": null}`, "maker community")
	if err != nil {
		t.Fatalf("ParseCTA failed: %v", err)
	}
	if cta.UrgencyIndicator != "" {
		t.Errorf("Expected empty urgency for null, got %q", cta.UrgencyIndicator)
	}
}

func TestParseCTAEmptyReplyIsError(t *testing.T) {
	if _, err := ParseCTA("", "maker community"); err == nil {
		t.Error("Expected an error for an empty reply")
	}
}

func TestParseCTAFallsBackToLineBands(t *testing.T) {
	raw := strings.Join([]string{
		"* Join the Weekend Builders Club", // short line, headline band
		"- Get project plans, tool lists and tips delivered every Friday morning.", // description band
	}, "\n")

	cta, err := ParseCTA(raw, "builders club")
	if err != nil {
		t.Fatalf("ParseCTA failed: %v", err)
	}
	if cta.Headline != "Join the Weekend Builders Club" {
		t.Errorf("Expected the short line as headline, got %q", cta.Headline)
	}
	if cta.Description != "Get project plans, tool lists and tips delivered every Friday morning." {
		t.Errorf("Expected the longer line as description, got %q", cta.Description)
	}
}

func TestContentLinesStripsMarkdownDecoration(t *testing.T) {
	lines := contentLines("## Heading\n\n* bullet one\n> quoted line\n\nplain")
	expected := []string{"Heading", "bullet one", "quoted line", "plain"}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %v", len(expected), lines)
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Errorf("Line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}
