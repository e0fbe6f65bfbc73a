package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"pagecraft/internal/core"
)

// heroWire and ctaWire mirror the provider-facing JSON schemas. Missing
// fields simply stay zero-valued and are repaired downstream.
type heroWire struct {
	Headline        string   `json:"headline"`
	Subheadline     string   `json:"subheadline"`
	Description     string   `json:"description"`
	CTAText         string   `json:"cta_text"`
	CTAURL          string   `json:"cta_url"`
	BackgroundStyle string   `json:"background_style"`
	TextAlignment   string   `json:"text_alignment"`
	VisualElements  []string `json:"visual_elements"`
	Keywords        []string `json:"keywords"`
}

type buttonWire struct {
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style"`
}

type ctaWire struct {
	Headline         string     `json:"headline"`
	Description      string     `json:"description"`
	PrimaryButton    buttonWire `json:"primary_button"`
	SecondaryButton  buttonWire `json:"secondary_button"`
	UrgencyIndicator *string    `json:"urgency_indicator"`
	ValueHighlights  []string   `json:"value_highlights"`
	SocialProof      string     `json:"social_proof"`
	LayoutStyle      string     `json:"layout_style"`
	ColorScheme      string     `json:"color_scheme"`
	ConversionGoal   string     `json:"conversion_goal"`
}

// Heuristic line-classification bands, applied when no JSON object can be
// decoded from the reply.
type lineBands struct {
	headlineMin, headlineMax       int
	subheadlineMin, subheadlineMax int
	descriptionMin, descriptionMax int
}

var (
	heroBands = lineBands{10, 60, 20, 120, 30, 150}
	ctaBands  = lineBands{10, 80, 0, 0, 30, 250}
)

// ParseHero extracts hero content from a provider's free-form reply. The
// first brace-delimited JSON object wins; otherwise non-empty lines are
// classified by length bands and the remainder is synthesized from the
// query. An empty reply is an error.
func ParseHero(raw, query string) (core.HeroContent, error) {
	if strings.TrimSpace(raw) == "" {
		return core.HeroContent{}, fmt.Errorf("provider reply is empty")
	}

	var wire heroWire
	if object, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal(object, &wire); err != nil {
			wire = heroFromLines(raw)
		}
	} else {
		wire = heroFromLines(raw)
	}

	defaults := DefaultHero(query)
	hero := core.HeroContent{
		Headline:        firstNonEmpty(wire.Headline, defaults.Headline),
		Subheadline:     firstNonEmpty(wire.Subheadline, defaults.Subheadline),
		Description:     firstNonEmpty(wire.Description, defaults.Description),
		CTAText:         firstNonEmpty(wire.CTAText, defaults.CTAText),
		CTAURL:          firstNonEmpty(wire.CTAURL, defaults.CTAURL),
		BackgroundStyle: firstNonEmpty(wire.BackgroundStyle, defaults.BackgroundStyle),
		TextAlignment:   firstNonEmpty(wire.TextAlignment, defaults.TextAlignment),
		VisualElements:  wire.VisualElements,
		Keywords:        wire.Keywords,
	}
	if hero.VisualElements == nil {
		hero.VisualElements = defaults.VisualElements
	}
	if hero.Keywords == nil {
		hero.Keywords = defaults.Keywords
	}
	return hero, nil
}

// ParseCTA extracts CTA content from a provider's free-form reply, with the
// same JSON-then-heuristic strategy as ParseHero.
func ParseCTA(raw, query string) (core.CTAContent, error) {
	if strings.TrimSpace(raw) == "" {
		return core.CTAContent{}, fmt.Errorf("provider reply is empty")
	}

	var wire ctaWire
	if object, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal(object, &wire); err != nil {
			wire = ctaFromLines(raw)
		}
	} else {
		wire = ctaFromLines(raw)
	}

	defaults := DefaultCTA(query)
	cta := core.CTAContent{
		Headline:    firstNonEmpty(wire.Headline, defaults.Headline),
		Description: firstNonEmpty(wire.Description, defaults.Description),
		PrimaryButton: core.ButtonContent{
			Text:  firstNonEmpty(wire.PrimaryButton.Text, defaults.PrimaryButton.Text),
			URL:   firstNonEmpty(wire.PrimaryButton.URL, defaults.PrimaryButton.URL),
			Style: firstNonEmpty(wire.PrimaryButton.Style, defaults.PrimaryButton.Style),
		},
		SecondaryButton: core.ButtonContent{
			Text:  firstNonEmpty(wire.SecondaryButton.Text, defaults.SecondaryButton.Text),
			URL:   firstNonEmpty(wire.SecondaryButton.URL, defaults.SecondaryButton.URL),
			Style: firstNonEmpty(wire.SecondaryButton.Style, defaults.SecondaryButton.Style),
		},
		ValueHighlights: wire.ValueHighlights,
		SocialProof:     firstNonEmpty(wire.SocialProof, defaults.SocialProof),
		LayoutStyle:     firstNonEmpty(wire.LayoutStyle, defaults.LayoutStyle),
		ColorScheme:     firstNonEmpty(wire.ColorScheme, defaults.ColorScheme),
		ConversionGoal:  firstNonEmpty(wire.ConversionGoal, defaults.ConversionGoal),
	}
	if wire.UrgencyIndicator != nil {
		cta.UrgencyIndicator = *wire.UrgencyIndicator
	}
	if cta.ValueHighlights == nil {
		cta.ValueHighlights = defaults.ValueHighlights
	}
	return cta, nil
}

// extractJSONObject finds the first brace-delimited object in the text,
// tracking string literals so braces inside values do not end the scan.
func extractJSONObject(text string) ([]byte, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return []byte(text[start : i+1]), true
			}
		}
	}
	return nil, false
}

// heroFromLines classifies non-empty reply lines into hero fields by
// length band, first match wins per field.
func heroFromLines(raw string) heroWire {
	var wire heroWire
	for _, line := range contentLines(raw) {
		length := len(line)
		switch {
		case wire.Headline == "" && length >= heroBands.headlineMin && length <= heroBands.headlineMax:
			wire.Headline = line
		case wire.Subheadline == "" && length >= heroBands.subheadlineMin && length <= heroBands.subheadlineMax:
			wire.Subheadline = line
		case wire.Description == "" && length >= heroBands.descriptionMin && length <= heroBands.descriptionMax:
			wire.Description = line
		}
	}
	return wire
}

// ctaFromLines classifies non-empty reply lines into CTA fields by length
// band.
func ctaFromLines(raw string) ctaWire {
	var wire ctaWire
	for _, line := range contentLines(raw) {
		length := len(line)
		switch {
		case wire.Headline == "" && length >= ctaBands.headlineMin && length <= ctaBands.headlineMax:
			wire.Headline = line
		case wire.Description == "" && length >= ctaBands.descriptionMin && length <= ctaBands.descriptionMax:
			wire.Description = line
		}
	}
	return wire
}

// contentLines returns the reply's non-empty lines with leading markdown
// decoration stripped.
func contentLines(raw string) []string {
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#*->• ")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
