// Package provider implements the resilient gateway to generative text
// providers: bounded retries, exponential backoff, error classification and
// a heuristic quality score for generated text.
package provider

import "fmt"

// NetworkError is a transport-level failure. Retryable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// RateLimitError is an HTTP 429 response. Retryable; the wait time comes
// from the server's Retry-After hint when present.
type RateLimitError struct {
	RetryAfter float64 // seconds, 0 when the server sent no hint
}

func (e *RateLimitError) Error() string { return "rate limit exceeded" }

// AuthError is an HTTP 401 or 403 response. Fatal: never retried.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d", e.StatusCode)
}

// APIError is any other HTTP error response. Retryable.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider API error: status %d", e.StatusCode)
}

// ParseError is a malformed JSON body on an otherwise successful response.
// Retryable.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("failed to parse provider response: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ExhaustedRetriesError is surfaced when the retry budget is consumed
// without any classified error being recorded.
type ExhaustedRetriesError struct {
	Attempts int
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("exhausted %d attempts without a successful response", e.Attempts)
}
