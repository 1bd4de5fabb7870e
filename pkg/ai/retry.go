package ai

import (
	"context"
	"strings"
	"time"
)

// Retry runs calls against the generative APIs with exponential backoff.
// Auth and client errors are not retried; network errors, 5xx and rate
// limits are.
type Retry struct {
	maxRetries int
	baseDelay  time.Duration
}

// NewRetry creates a retry helper.
func NewRetry(maxRetries int, baseDelay time.Duration) *Retry {
	return &Retry{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// Execute runs fn until it succeeds, the attempts are exhausted, or the
// context is cancelled.
func (r *Retry) Execute(ctx context.Context, fn func() error) error {
	var lastErr error

	delay := r.baseDelay
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries || !isRetryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return lastErr
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	for _, marker := range []string{"401", "403", "unauthorized", "forbidden", "400", "404"} {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}
