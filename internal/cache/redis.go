package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/internal/metrics"
)

const (
	backendRedis     = "redis"
	defaultOpTimeout = 500 * time.Millisecond
)

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// RedisStore keeps entries in Redis with a server-side TTL matching the entry.
// It shares nothing but the key space with other processes; there is no coherency protocol.
type RedisStore struct {
	redis     *redis.Client
	opTimeout time.Duration
	logger    *zap.Logger
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(redisClient *redis.Client, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{
		redis:     redisClient,
		opTimeout: defaultOpTimeout,
		logger:    logger,
	}
}

// Get retrieves an entry by key
func (r *RedisStore) Get(key string) (*Entry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()

	data, err := r.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis cache get failed", zap.String("key", key), zap.Error(err))
			metrics.RecordCacheError(backendRedis, "get")
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Cache corruption, treat as miss
		r.logger.Warn("failed to unmarshal redis cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendRedis, "decode")
		r.Delete(key)
		return nil, false
	}

	return &entry, true
}

// Set stores an entry with the entry's TTL
func (r *RedisStore) Set(key string, entry *Entry) {
	ttl := entry.TTL()
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		r.logger.Error("failed to marshal redis cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendRedis, "encode")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()

	if err := r.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Warn("redis cache set failed", zap.String("key", key), zap.Error(err))
		metrics.RecordCacheError(backendRedis, "set")
	}
}

// Delete removes an entry
func (r *RedisStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opTimeout)
	defer cancel()

	if err := r.redis.Del(ctx, key).Err(); err != nil {
		r.logger.Debug("redis cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Close is a no-op; the Redis client is owned by the caller
func (r *RedisStore) Close() error {
	return nil
}
