package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func chatReply(content string) Response {
	return okResponse(`{"choices": [{"message": {"role": "assistant", "content": "` + content + `"}}]}`)
}

func TestChatClientGenerateText(t *testing.T) {
	transport := &scriptedTransport{responses: []Response{chatReply("Here is your headline.")}}
	gateway := NewGateway(transport, 3).WithSleeper(&recordingSleeper{})
	client := NewChatClient(gateway, "https://api.example.com/", "test-key", "test-model")

	result, err := client.GenerateText(context.Background(), "write a headline", GenerateOptions{MaxTokens: 100})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if result.RawContent != "Here is your headline." {
		t.Errorf("Expected the reply content, got %q", result.RawContent)
	}
	if result.ProviderName != "chat" || result.Model != "test-model" {
		t.Errorf("Expected provider metadata, got %+v", result)
	}
	if result.WordCount != 4 {
		t.Errorf("Expected 4 words counted, got %d", result.WordCount)
	}
}

func TestChatClientMissingChoicesIsParseError(t *testing.T) {
	transport := &scriptedTransport{responses: []Response{okResponse(`{"choices": []}`)}}
	gateway := NewGateway(transport, 3).WithSleeper(&recordingSleeper{})
	client := NewChatClient(gateway, "https://api.example.com", "test-key", "test-model")

	_, err := client.GenerateText(context.Background(), "write a headline", GenerateOptions{})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
}

func TestChatClientModelOverride(t *testing.T) {
	transport := &scriptedTransport{responses: []Response{chatReply("ok text here")}}
	gateway := NewGateway(transport, 3).WithSleeper(&recordingSleeper{})
	client := NewChatClient(gateway, "https://api.example.com", "test-key", "default-model")

	result, err := client.GenerateText(context.Background(), "prompt", GenerateOptions{Model: "special-model"})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if result.Model != "special-model" {
		t.Errorf("Expected the override model recorded, got %q", result.Model)
	}
}

func TestChatClientSurfacesAuthError(t *testing.T) {
	transport := &scriptedTransport{responses: []Response{{StatusCode: http.StatusUnauthorized}}}
	gateway := NewGateway(transport, 3).WithSleeper(&recordingSleeper{})
	client := NewChatClient(gateway, "https://api.example.com", "bad-key", "test-model")

	_, err := client.GenerateText(context.Background(), "prompt", GenerateOptions{})

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Expected AuthError, got %v", err)
	}
	if transport.calls != 1 {
		t.Errorf("Expected a single attempt, got %d", transport.calls)
	}
}
