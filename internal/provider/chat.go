package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pagecraft/internal/core"
)

// GenerateOptions controls a single text generation call.
type GenerateOptions struct {
	MaxTokens   int32   // Maximum tokens to generate, 0 for provider default
	Temperature float32 // Randomness, 0.0-1.0
	Model       string  // Overrides the client's default model when set
}

// TextGenerator produces text from a prompt. The generation pipeline
// depends only on this interface so providers can be swapped or mocked.
type TextGenerator interface {
	Name() string
	GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (core.ProviderResult, error)
}

// ChatClient is a TextGenerator over a chat-completions-style HTTP
// provider, routed through the resilient Gateway.
type ChatClient struct {
	gateway *Gateway
	baseURL string
	apiKey  string
	model   string
}

// NewChatClient creates a client for the given provider endpoint.
func NewChatClient(gateway *Gateway, baseURL, apiKey, model string) *ChatClient {
	return &ChatClient{
		gateway: gateway,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

// Name identifies this provider in ProviderResult metadata.
func (c *ChatClient) Name() string { return "chat" }

// GenerateText sends the prompt as a single-message chat completion and
// wraps the reply with quality metadata.
func (c *ChatClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (core.ProviderResult, error) {
	model := opts.Model
	if model == "" {
		model = c.model
	}

	payload := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}
	if opts.Temperature > 0 {
		payload["temperature"] = opts.Temperature
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	body, err := c.gateway.Send(ctx, c.baseURL+"/v1/chat/completions", payload, headers, http.MethodPost)
	if err != nil {
		return core.ProviderResult{}, err
	}

	content, err := extractChatContent(body)
	if err != nil {
		return core.ProviderResult{}, err
	}

	return core.ProviderResult{
		RawContent:   content,
		ProviderName: c.Name(),
		Model:        model,
		QualityScore: ScoreQuality(content),
		WordCount:    len(strings.Fields(content)),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// extractChatContent pulls choices[0].message.content from a decoded
// chat-completions response body.
func extractChatContent(body map[string]any) (string, error) {
	choices, ok := body["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", &ParseError{Err: fmt.Errorf("response has no choices")}
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", &ParseError{Err: fmt.Errorf("malformed choice entry")}
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", &ParseError{Err: fmt.Errorf("choice has no message")}
	}
	content, ok := message["content"].(string)
	if !ok || strings.TrimSpace(content) == "" {
		return "", &ParseError{Err: fmt.Errorf("message has no content")}
	}
	return content, nil
}
