package generate

import (
	"context"
	"time"

	"pagecraft/internal/core"
	"pagecraft/internal/logger"
	"pagecraft/internal/provider"
)

// Pipeline runs a component generator against a text provider. Any failure
// along the way routes to the generator's fallback, so the caller always
// receives a schema-valid component, degraded in quality rather than
// absent.
type Pipeline struct {
	provider     provider.TextGenerator
	personalizer *Personalizer
	temperature  float32
}

// NewPipeline creates a generation pipeline. The chooser seed controls
// phrase selection during personalization; use a fixed seed for
// reproducible output.
func NewPipeline(textProvider provider.TextGenerator, chooser *Chooser, temperature float32) *Pipeline {
	if chooser == nil {
		chooser = NewChooser(time.Now().UnixNano())
	}
	return &Pipeline{
		provider:     textProvider,
		personalizer: NewPersonalizer(chooser),
		temperature:  temperature,
	}
}

// Generate produces a component of the requested type. The returned value
// is a core.HeroContent or core.CTAContent depending on the type tag.
func (p *Pipeline) Generate(ctx context.Context, componentType core.ComponentType, req Request) (any, error) {
	generator, err := ForComponent(componentType)
	if err != nil {
		return nil, err
	}

	gctx := generator.PrepareContext(req)

	if p.provider == nil {
		return generator.Fallback(gctx), nil
	}

	prompt := generator.BuildPrompt(gctx)
	result, err := p.provider.GenerateText(ctx, prompt, provider.GenerateOptions{
		MaxTokens:   generator.MaxTokens(),
		Temperature: p.temperature,
	})
	if err != nil {
		logger.Warn("generation failed, using fallback", map[string]any{
			"component": componentType,
			"query":     req.Query,
			"error":     err.Error(),
		})
		return generator.Fallback(gctx), nil
	}

	parsed, err := generator.ProcessResponse(result.RawContent, gctx)
	if err != nil {
		logger.Warn("unusable provider reply, using fallback", map[string]any{
			"component": componentType,
			"provider":  result.ProviderName,
			"error":     err.Error(),
		})
		return generator.Fallback(gctx), nil
	}

	validated := generator.Validate(parsed, gctx)
	return generator.Personalize(validated, gctx, p.personalizer), nil
}

// GenerateHero is a typed convenience wrapper over Generate.
func (p *Pipeline) GenerateHero(ctx context.Context, req Request) (core.HeroContent, error) {
	content, err := p.Generate(ctx, core.ComponentHero, req)
	if err != nil {
		return core.HeroContent{}, err
	}
	return content.(core.HeroContent), nil
}

// GenerateCTA is a typed convenience wrapper over Generate.
func (p *Pipeline) GenerateCTA(ctx context.Context, req Request) (core.CTAContent, error) {
	content, err := p.Generate(ctx, core.ComponentCTA, req)
	if err != nil {
		return core.CTAContent{}, err
	}
	return content.(core.CTAContent), nil
}
