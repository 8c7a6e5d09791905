package ratelimiting

import "context"

// FetchLimiter caps the number of in-flight bulk-fetch requests. It is
// invocation-scoped: each bulk fetch constructs its own limiter so one
// caller's retries cannot starve another caller's slots.
type FetchLimiter struct {
	slots chan struct{}
}

func NewFetchLimiter(maxInFlight int) *FetchLimiter {
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &FetchLimiter{
		slots: make(chan struct{}, maxInFlight),
	}
}

// Acquire blocks until a slot is free or the context is cancelled. On
// success the caller must call the returned release function exactly once.
func (l *FetchLimiter) Acquire(ctx context.Context) (func(), error) {
	select {
	case l.slots <- struct{}{}:
		release := func() {
			<-l.slots
		}
		return release, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
