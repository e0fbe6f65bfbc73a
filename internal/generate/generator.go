package generate

import (
	"fmt"

	"pagecraft/internal/core"
)

// ComponentGenerator is the fixed capability set shared by every component
// variant. Concrete generators are selected by component type tag rather
// than subclassing. The provider-preference list is advisory ordering data
// only; the pipeline always uses its single configured provider.
type ComponentGenerator interface {
	ComponentType() core.ComponentType
	ProviderPreferences() []string
	PrepareContext(req Request) core.GenerationContext
	BuildPrompt(gctx core.GenerationContext) string
	MaxTokens() int32
	ProcessResponse(raw string, gctx core.GenerationContext) (any, error)
	Validate(content any, gctx core.GenerationContext) any
	Personalize(content any, gctx core.GenerationContext, p *Personalizer) any
	Fallback(gctx core.GenerationContext) any
}

// ForComponent returns the generator for a component type.
func ForComponent(componentType core.ComponentType) (ComponentGenerator, error) {
	switch componentType {
	case core.ComponentHero:
		return heroGenerator{}, nil
	case core.ComponentCTA:
		return ctaGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown component type %q", componentType)
	}
}

type heroGenerator struct{}

func (heroGenerator) ComponentType() core.ComponentType { return core.ComponentHero }

func (heroGenerator) ProviderPreferences() []string { return []string{"gemini", "chat"} }

func (heroGenerator) PrepareContext(req Request) core.GenerationContext {
	return BuildContext(req)
}

func (heroGenerator) BuildPrompt(gctx core.GenerationContext) string {
	return BuildComponentPrompt(core.ComponentHero, gctx)
}

func (heroGenerator) MaxTokens() int32 { return 600 }

func (heroGenerator) ProcessResponse(raw string, gctx core.GenerationContext) (any, error) {
	return ParseHero(raw, gctx.Query)
}

func (heroGenerator) Validate(content any, gctx core.GenerationContext) any {
	hero, ok := content.(core.HeroContent)
	if !ok {
		return FallbackHero(gctx.Query, gctx.Intent)
	}
	return ValidateHero(hero, gctx.Query)
}

func (heroGenerator) Personalize(content any, gctx core.GenerationContext, p *Personalizer) any {
	hero, ok := content.(core.HeroContent)
	if !ok {
		return content
	}
	return p.PersonalizeHero(hero, gctx)
}

func (heroGenerator) Fallback(gctx core.GenerationContext) any {
	return FallbackHero(gctx.Query, gctx.Intent)
}

type ctaGenerator struct{}

func (ctaGenerator) ComponentType() core.ComponentType { return core.ComponentCTA }

func (ctaGenerator) ProviderPreferences() []string { return []string{"gemini", "chat"} }

func (ctaGenerator) PrepareContext(req Request) core.GenerationContext {
	return BuildContext(req)
}

func (ctaGenerator) BuildPrompt(gctx core.GenerationContext) string {
	return BuildComponentPrompt(core.ComponentCTA, gctx)
}

func (ctaGenerator) MaxTokens() int32 { return 700 }

func (ctaGenerator) ProcessResponse(raw string, gctx core.GenerationContext) (any, error) {
	return ParseCTA(raw, gctx.Query)
}

func (ctaGenerator) Validate(content any, gctx core.GenerationContext) any {
	cta, ok := content.(core.CTAContent)
	if !ok {
		return FallbackCTA(gctx.Query, gctx.Intent)
	}
	return ValidateCTA(cta, gctx.Query)
}

func (ctaGenerator) Personalize(content any, gctx core.GenerationContext, p *Personalizer) any {
	cta, ok := content.(core.CTAContent)
	if !ok {
		return content
	}
	return p.PersonalizeCTA(cta, gctx)
}

func (ctaGenerator) Fallback(gctx core.GenerationContext) any {
	return FallbackCTA(gctx.Query, gctx.Intent)
}
