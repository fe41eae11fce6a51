// Package ratelimit gates calls against the shared upstream request budget.
//
// Limiters never fail on exhaustion: they report how long a caller must wait
// (Reserve) or suspend the caller until a slot is secured (Wait).
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/pkg/contracts"
)

const (
	StrategyFixedWindow = "fixed_window"
	StrategyTokenBucket = "token_bucket"

	DefaultLimit  = 5
	DefaultWindow = 60 * time.Second

	// UnauthenticatedLimit caps the budget when no API key is configured
	UnauthenticatedLimit = 5
)

// Config selects and sizes a limiter
type Config struct {
	Strategy string
	Limit    int
	Window   time.Duration
}

type options struct {
	clock  clock.Clock
	logger *zap.Logger
}

// Option customizes a limiter
type Option func(*options)

// WithClock injects the clock used for windows and suspension
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger used to report suspensions
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{clock: clock.New(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

// New builds the limiter named by cfg.Strategy. An empty strategy selects the fixed window.
func New(cfg Config, opts ...Option) (contracts.Limiter, error) {
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.Limit)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("rate window must be positive, got %v", cfg.Window)
	}

	switch cfg.Strategy {
	case "", StrategyFixedWindow:
		return NewFixedWindow(cfg.Limit, cfg.Window, opts...), nil
	case StrategyTokenBucket:
		return NewTokenBucket(cfg.Limit, cfg.Window, opts...), nil
	default:
		return nil, fmt.Errorf("unknown rate limit strategy %q", cfg.Strategy)
	}
}

// EffectiveLimit applies the unauthenticated-tier cap when no API key is set
func EffectiveLimit(configured int, apiKey string) int {
	if apiKey == "" && configured > UnauthenticatedLimit {
		return UnauthenticatedLimit
	}
	return configured
}

// wait retries reserve until it grants a slot, sleeping on clk between attempts.
// Every waiter re-contends after each sleep, so a waiter that loses a race for
// the fresh window simply sleeps again until the following one.
func wait(ctx context.Context, clk clock.Clock, logger *zap.Logger, reserve func() time.Duration) (time.Duration, error) {
	var waited time.Duration
	for {
		d := reserve()
		if d <= 0 {
			return waited, nil
		}

		logger.Debug("rate limit window exhausted, suspending", zap.Duration("wait", d))

		timer := clk.Timer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return waited, ctx.Err()
		case <-timer.C:
			waited += d
		}
	}
}
