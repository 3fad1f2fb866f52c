package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Retry calls fn until it succeeds, up to attempts times, sleeping delay between tries.
// Every failed attempt is logged; the last error is returned once attempts run out.
func Retry(ctx context.Context, attempts int, delay time.Duration, logr *zap.Logger, what string, fn func() error) error {
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}

		logr.Warn("connection attempt failed",
			zap.String("target", what),
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err))

		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", what, ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("failed to connect to %s after %d attempts: %w", what, attempts, err)
}
