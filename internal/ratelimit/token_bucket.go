package ratelimit

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/XavierBriggs/Janus/pkg/contracts"
)

// TokenBucket spreads the same budget evenly: one token every window/limit,
// with a burst of limit tokens.
type TokenBucket struct {
	lim    *rate.Limiter
	window time.Duration
	clock  clock.Clock
	logger *zap.Logger
}

var _ contracts.Limiter = (*TokenBucket)(nil)

// NewTokenBucket creates a token bucket limiter backed by golang.org/x/time/rate
func NewTokenBucket(limit int, window time.Duration, opts ...Option) *TokenBucket {
	o := buildOptions(opts)
	return &TokenBucket{
		lim:    rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit),
		window: window,
		clock:  o.clock,
		logger: o.logger,
	}
}

// Reserve takes a token and returns zero, or returns the delay until one is available
func (b *TokenBucket) Reserve() time.Duration {
	now := b.clock.Now()

	r := b.lim.ReserveN(now, 1)
	if !r.OK() {
		return b.window
	}

	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return d
	}
	return 0
}

// Wait blocks until a token is taken
func (b *TokenBucket) Wait(ctx context.Context) (time.Duration, error) {
	return wait(ctx, b.clock, b.logger, b.Reserve)
}
