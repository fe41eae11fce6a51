// Package cache memoizes normalized upstream results keyed by request signature.
package cache

import (
	"encoding/json"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/internal/metrics"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// ResponseCache is a TTL cache of normalized results over a byte Store.
// Expiry is lazy: an entry past its deadline is treated as absent and removed
// on the next lookup.
type ResponseCache struct {
	store  Store
	clock  clock.Clock
	logger *zap.Logger
}

// Option customizes a ResponseCache
type Option func(*ResponseCache)

// WithClock injects the clock used to stamp and expire entries
func WithClock(c clock.Clock) Option {
	return func(rc *ResponseCache) { rc.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(rc *ResponseCache) { rc.logger = l }
}

// New creates a response cache on top of store
func New(store Store, opts ...Option) *ResponseCache {
	rc := &ResponseCache{
		store:  store,
		clock:  clock.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rc)
	}
	if rc.store == nil {
		rc.store = NewNoOpStore()
	}
	return rc
}

// Get returns the cached result for sig, or false when absent or expired
func (rc *ResponseCache) Get(sig Signature) (*models.Result, bool) {
	key := sig.Key()

	entry, ok := rc.store.Get(key)
	if !ok {
		return nil, false
	}

	if entry.IsExpired(rc.clock.Now()) {
		rc.store.Delete(key)
		return nil, false
	}

	var result models.Result
	if err := json.Unmarshal(entry.Data, &result); err != nil {
		rc.logger.Warn("dropping undecodable cache entry", zap.String("signature", sig.String()), zap.Error(err))
		metrics.RecordCacheError("response", "decode")
		rc.store.Delete(key)
		return nil, false
	}

	return &result, true
}

// Put stores result under sig for ttl. A non-positive ttl disables storage.
func (rc *ResponseCache) Put(sig Signature, result *models.Result, ttl time.Duration) {
	if result == nil || ttl <= 0 {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		rc.logger.Error("failed to encode result for cache", zap.String("signature", sig.String()), zap.Error(err))
		metrics.RecordCacheError("response", "encode")
		return
	}

	now := rc.clock.Now()
	rc.store.Set(sig.Key(), &Entry{
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	})
}

// Close releases the underlying store
func (rc *ResponseCache) Close() error {
	return rc.store.Close()
}
