package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"pagecraft/internal/core"
)

// DefaultGeminiModel is the default Gemini model for component generation.
const DefaultGeminiModel = "gemini-flash-lite-latest"

// GeminiClient is a TextGenerator backed by the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed generator. The API key is
// required; an empty model falls back to the default.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name identifies this provider in ProviderResult metadata.
func (c *GeminiClient) Name() string { return "gemini" }

// GenerateText sends the prompt to Gemini and wraps the reply with quality
// metadata.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (core.ProviderResult, error) {
	model := opts.Model
	if model == "" {
		model = c.model
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
		Role:  "user",
	}}

	config := &genai.GenerateContentConfig{}
	if opts.MaxTokens > 0 {
		config.MaxOutputTokens = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		temperature := opts.Temperature
		config.Temperature = &temperature
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return core.ProviderResult{}, &NetworkError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		return core.ProviderResult{}, &ParseError{Err: fmt.Errorf("empty response from model")}
	}

	return core.ProviderResult{
		RawContent:   text,
		ProviderName: c.Name(),
		Model:        model,
		QualityScore: ScoreQuality(text),
		WordCount:    len(strings.Fields(text)),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}
