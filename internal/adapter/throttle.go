// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// throttle serializes outbound calls and spaces their starts at least
// minInterval apart. One throttle is shared by every call of an adapter.
type throttle struct {
	mu      sync.Mutex
	limiter *rate.Limiter
}

func newThrottle(minInterval time.Duration) *throttle {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	return &throttle{limiter: rate.NewLimiter(limit, 1)}
}

// do waits for a slot and runs fn while holding the call lock.
func (t *throttle) do(ctx context.Context, fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.limiter.Wait(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			return fmt.Errorf("throttle wait: %w", ctx.Err())
		}
		return fmt.Errorf("%w: throttle wait: %s", ErrTimeout, err)
	}

	return fn()
}
