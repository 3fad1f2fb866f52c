package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	calls := 0

	err := Retry(context.Background(), 5, time.Millisecond, zap.New(core), "postgres", func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, logs.FilterMessage("connection attempt failed").Len())
}

func TestRetry_GivesUp(t *testing.T) {
	boom := errors.New("connection refused")
	calls := 0

	err := Retry(context.Background(), 3, time.Millisecond, zap.NewNop(), "postgres", func() error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := Retry(ctx, 10, time.Hour, zap.NewNop(), "mongodb", func() error {
		calls++
		cancel()
		return errors.New("server selection timeout")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetry_NonPositiveAttemptsTriesOnce(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 0, time.Millisecond, zap.NewNop(), "sqlite", func() error {
		calls++
		return errors.New("nope")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
