package ratelimiting_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chesswrapped/chesswrapped/internal/ratelimiting"
	"github.com/stretchr/testify/require"
)

func TestFetchLimiter(t *testing.T) {
	t.Parallel()

	t.Run("never exceeds the in-flight limit", func(t *testing.T) {
		t.Parallel()

		const limit = 5
		const workers = 50

		limiter := ratelimiting.NewFetchLimiter(limit)

		var inFlight, maxSeen atomic.Int64
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				release, err := limiter.Acquire(context.Background())
				require.NoError(t, err)
				defer release()

				current := inFlight.Add(1)
				for {
					seen := maxSeen.Load()
					if current <= seen || maxSeen.CompareAndSwap(seen, current) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inFlight.Add(-1)
			}()
		}
		wg.Wait()

		require.LessOrEqual(t, maxSeen.Load(), int64(limit))
		require.Greater(t, maxSeen.Load(), int64(0))
	})

	t.Run("acquire respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimiting.NewFetchLimiter(1)
		release, err := limiter.Acquire(context.Background())
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err = limiter.Acquire(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestTokenBucketRateLimiter(t *testing.T) {
	t.Parallel()

	limiter, stop := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(2),
	)
	defer stop()

	require.True(t, limiter.Consume("key"))
	require.True(t, limiter.Consume("key"))
	require.False(t, limiter.Consume("key"))

	// Independent keys get independent buckets
	require.True(t, limiter.Consume("other"))
}
