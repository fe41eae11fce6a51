package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/internal/metrics"
)

const (
	backendMemory = "memory"

	// DefaultMaxSizeMB caps the memory store when no size is configured
	DefaultMaxSizeMB = 256

	memoryShards          = 64
	memoryEntrySizeHint   = 4 * 1024
	memoryEntriesInWindow = 1024
)

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore is the in-process store backed by BigCache.
// BigCache bounds memory; per-entry expiry is decided by ResponseCache.
type MemoryStore struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// NewMemoryStore creates a BigCache store.
// lifeWindow must cover the longest TTL in use; maxSizeMB caps memory and
// falls back to DefaultMaxSizeMB when not positive.
// A single entry must fit in one shard (maxSizeMB / 64).
func NewMemoryStore(lifeWindow time.Duration, maxSizeMB int, logger *zap.Logger) (*MemoryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}

	config := bigcache.DefaultConfig(lifeWindow)
	config.Shards = memoryShards
	config.MaxEntriesInWindow = memoryEntriesInWindow
	config.MaxEntrySize = memoryEntrySizeHint // initial allocation hint, not a limit
	config.HardMaxCacheSize = maxSizeMB
	config.CleanWindow = time.Minute
	config.Verbose = false

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("create bigcache: %w", err)
	}

	return &MemoryStore{cache: cache, logger: logger}, nil
}

// Get retrieves an entry by key
func (m *MemoryStore) Get(key string) (*Entry, bool) {
	data, err := m.cache.Get(key)
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			m.logger.Warn("memory cache get failed", zap.String("key", key), zap.Error(err))
			metrics.RecordCacheError(backendMemory, "get")
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		m.logger.Warn("failed to unmarshal memory cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendMemory, "decode")
		_ = m.cache.Delete(key) // Remove corrupted entry
		return nil, false
	}

	return &entry, true
}

// Set stores an entry, replacing any previous one
func (m *MemoryStore) Set(key string, entry *Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		m.logger.Error("failed to marshal memory cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendMemory, "encode")
		return
	}

	if err := m.cache.Set(key, data); err != nil {
		m.logger.Error("failed to set memory cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendMemory, "set")
	}
}

// Delete removes an entry
func (m *MemoryStore) Delete(key string) {
	_ = m.cache.Delete(key)
}

// Len returns the number of stored entries, expired ones included
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}

// Close releases the cache
func (m *MemoryStore) Close() error {
	return m.cache.Close()
}
