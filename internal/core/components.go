package core

// ComponentType identifies a page component schema.
type ComponentType string

const (
	ComponentHero ComponentType = "hero"
	ComponentCTA  ComponentType = "cta"
)

// HeroContent is the validated schema for a hero banner component. After
// validation every field is populated; slices may be empty but never nil.
type HeroContent struct {
	Headline        string   `json:"headline"`         // Max 60 characters
	Subheadline     string   `json:"subheadline"`      // Max 120 characters
	Description     string   `json:"description"`      // Max 200 characters
	CTAText         string   `json:"cta_text"`         // Max 25 characters
	CTAURL          string   `json:"cta_url"`          // Destination for the primary action
	BackgroundStyle string   `json:"background_style"` // gradient, solid, image
	TextAlignment   string   `json:"text_alignment"`   // left, center, right
	VisualElements  []string `json:"visual_elements"`  // Suggested visual treatments
	Keywords        []string `json:"keywords"`         // Keywords the copy targets
}

// ButtonContent describes a CTA button.
type ButtonContent struct {
	Text  string `json:"text"`  // Max 20 characters
	URL   string `json:"url"`   // Destination
	Style string `json:"style"` // primary, secondary, outline, text
}

// CTAContent is the validated schema for a call-to-action component.
// UrgencyIndicator is the only nullable field: an empty string means no
// indicator is shown.
type CTAContent struct {
	Headline         string        `json:"headline"`          // Max 50 characters
	Description      string        `json:"description"`       // Max 120 characters
	PrimaryButton    ButtonContent `json:"primary_button"`    // Always populated
	SecondaryButton  ButtonContent `json:"secondary_button"`  // Always populated
	UrgencyIndicator string        `json:"urgency_indicator"` // Limited time, Popular choice, Recommended, or ""
	ValueHighlights  []string      `json:"value_highlights"`  // Max 4 entries
	SocialProof      string        `json:"social_proof"`      // Max 80 characters
	LayoutStyle      string        `json:"layout_style"`      // centered, split, banner, sidebar
	ColorScheme      string        `json:"color_scheme"`      // primary, accent, neutral, custom
	ConversionGoal   string        `json:"conversion_goal"`   // signup, purchase, download, contact, learn
}
