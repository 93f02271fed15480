package services

import (
	"context"
	"time"

	"github.com/helix-tools/askbase/internal/core/domain"
	"github.com/helix-tools/askbase/internal/logger"
)

// retryBaseDelay is the first backoff step; doubled per attempt.
const retryBaseDelay = 200 * time.Millisecond

// retryMaxDelay caps the backoff growth.
const retryMaxDelay = 5 * time.Second

// withRetry runs fn up to maxAttempts times, backing off exponentially
// between attempts. Only errors classified as transient
// (domain.IsTransient) are retried; anything else is returned as-is.
// The loop respects ctx cancellation between attempts.
func withRetry(ctx context.Context, maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			logger.Debug("Retrying after transient failure (attempt %d/%d): %v", attempt+1, maxAttempts, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay(attempt - 1)):
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
		if !domain.IsTransient(err) {
			return err
		}
	}
	return err
}

// retryDelay returns the backoff for the given zero-based attempt,
// exponential and capped at retryMaxDelay.
func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := retryBaseDelay << attempt
	if d > retryMaxDelay {
		d = retryMaxDelay
	}
	return d
}
