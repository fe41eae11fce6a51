package cache

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backend names accepted by NewStore
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// StoreConfig selects and sizes a store backend
type StoreConfig struct {
	Backend    string
	MaxSizeMB  int
	LifeWindow time.Duration
}

// NewStore builds the configured backend. The redis backend requires a client.
func NewStore(cfg StoreConfig, redisClient *redis.Client, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		lifeWindow := cfg.LifeWindow
		if lifeWindow <= 0 {
			lifeWindow = 12 * time.Hour
		}
		return NewMemoryStore(lifeWindow, cfg.MaxSizeMB, logger)
	case BackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("cache backend %q requires a redis client", BackendRedis)
		}
		return NewRedisStore(redisClient, logger), nil
	case BackendNone:
		return NewNoOpStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
