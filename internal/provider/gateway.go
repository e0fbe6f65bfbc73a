package provider

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"pagecraft/internal/logger"
)

// DefaultMaxAttempts is the gateway's default retry budget.
const DefaultMaxAttempts = 3

// Sleeper waits for a backoff interval. The production implementation is
// context-cancellable; tests substitute a recording double so retry paths
// can assert that no wait happened.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper waits on a timer, returning early when the context is done.
type TimerSleeper struct{}

// Sleep blocks until the interval elapses or the context is cancelled.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Gateway sends requests to a generative text provider with bounded
// retries, exponential backoff and error classification. Configuration is
// read-only after construction.
type Gateway struct {
	transport   Transport
	sleeper     Sleeper
	maxAttempts int
}

// NewGateway creates a gateway over the given transport. A maxAttempts of
// zero or less falls back to the default budget.
func NewGateway(transport Transport, maxAttempts int) *Gateway {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Gateway{
		transport:   transport,
		sleeper:     TimerSleeper{},
		maxAttempts: maxAttempts,
	}
}

// WithSleeper replaces the backoff sleeper. Intended for tests.
func (g *Gateway) WithSleeper(sleeper Sleeper) *Gateway {
	g.sleeper = sleeper
	return g
}

// Send posts the payload to the endpoint and returns the decoded JSON body.
// Failures are classified and retried up to the attempt budget, except
// authentication failures which abort immediately. When every attempt
// fails, the last classified error is returned.
func (g *Gateway) Send(ctx context.Context, endpoint string, payload any, headers map[string]string, method string) (map[string]any, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		body = encoded
	}
	if method == "" {
		method = http.MethodPost
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		resp, err := g.transport.Do(ctx, Request{
			URL:     endpoint,
			Method:  method,
			Headers: headers,
			Body:    body,
		})
		if err != nil {
			lastErr = &NetworkError{Err: err}
			if waitErr := g.backoff(ctx, attempt, backoffSeconds(attempt)); waitErr != nil {
				return nil, lastErr
			}
			continue
		}

		classified := classify(resp)
		if classified == nil {
			decoded := map[string]any{}
			if err := json.Unmarshal(resp.Body, &decoded); err != nil {
				lastErr = &ParseError{Err: err}
				if waitErr := g.backoff(ctx, attempt, backoffSeconds(attempt)); waitErr != nil {
					return nil, lastErr
				}
				continue
			}
			return decoded, nil
		}

		if authErr, ok := classified.(*AuthError); ok {
			// Fatal: retrying cannot help, and no backoff is taken.
			return nil, authErr
		}

		lastErr = classified
		wait := backoffSeconds(attempt)
		if rateErr, ok := classified.(*RateLimitError); ok {
			// Rate limits honor the server hint, falling back to 2^attempt.
			wait = rateErr.RetryAfter
			if wait <= 0 {
				wait = math.Pow(2, float64(attempt))
			}
		}
		if waitErr := g.backoff(ctx, attempt, wait); waitErr != nil {
			return nil, lastErr
		}
	}

	if lastErr == nil {
		lastErr = &ExhaustedRetriesError{Attempts: g.maxAttempts}
	}
	return nil, lastErr
}

// backoff waits before the next attempt. The final attempt never waits.
func (g *Gateway) backoff(ctx context.Context, attempt int, seconds float64) error {
	if attempt >= g.maxAttempts {
		return nil
	}
	logger.Debug("retrying provider request", map[string]any{
		"attempt":      attempt,
		"wait_seconds": seconds,
	})
	return g.sleeper.Sleep(ctx, time.Duration(seconds*float64(time.Second)))
}

// classify maps an HTTP response to its error class. A nil return means
// success.
func classify(resp Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Headers)}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	default:
		return nil
	}
}

// parseRetryAfter reads the server's Retry-After hint. Missing or
// unparseable hints fall back to 2^attempt at the call site, signalled here
// by returning 0.
func parseRetryAfter(headers http.Header) float64 {
	if headers == nil {
		return 0
	}
	value := headers.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

// backoffSeconds is the exponential backoff schedule: 1s, 2s, 4s, ...
func backoffSeconds(attempt int) float64 {
	return math.Pow(2, float64(attempt-1))
}
