package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/pkg/contracts"
)

// FixedWindow admits at most limit acquisitions per window.
// The window starts at the first acquisition after the previous one elapsed.
type FixedWindow struct {
	mu sync.Mutex

	limit  int
	window time.Duration

	windowStart time.Time
	count       int
	started     bool

	clock  clock.Clock
	logger *zap.Logger
}

var _ contracts.Limiter = (*FixedWindow)(nil)

// NewFixedWindow creates a fixed window limiter
func NewFixedWindow(limit int, window time.Duration, opts ...Option) *FixedWindow {
	o := buildOptions(opts)
	return &FixedWindow{
		limit:  limit,
		window: window,
		clock:  o.clock,
		logger: o.logger,
	}
}

// Reserve takes a slot in the current window and returns zero, or returns the
// time remaining until the window resets when all slots are taken.
func (l *FixedWindow) Reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if !l.started || !now.Before(l.windowStart.Add(l.window)) {
		l.windowStart = now
		l.count = 0
		l.started = true
	}

	if l.count < l.limit {
		l.count++
		return 0
	}

	return l.windowStart.Add(l.window).Sub(now)
}

// Wait blocks until a slot is secured
func (l *FixedWindow) Wait(ctx context.Context) (time.Duration, error) {
	return wait(ctx, l.clock, l.logger, l.Reserve)
}

// Snapshot returns the current window start and consumed count
func (l *FixedWindow) Snapshot() (time.Time, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.windowStart, l.count
}

// Limit returns the configured number of requests per window
func (l *FixedWindow) Limit() int { return l.limit }

// Window returns the configured window length
func (l *FixedWindow) Window() time.Duration { return l.window }
