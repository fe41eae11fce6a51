// Package config loads Janus settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/internal/cache"
	"github.com/XavierBriggs/Janus/internal/ratelimit"
)

// Transports accepted by server.transport
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config represents the main configuration structure
type Config struct {
	Upstream  UpstreamConfig  `yaml:"upstream"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Usage     UsageConfig     `yaml:"usage"`
	Warmer    WarmerConfig    `yaml:"warmer"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
}

// UpstreamConfig configures the provider client
type UpstreamConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	VerifySSL *bool         `yaml:"verify_ssl"`
	Timeout   time.Duration `yaml:"timeout"`
}

// VerifyTLS reports whether certificates are verified (default true)
func (u UpstreamConfig) VerifyTLS() bool {
	return u.VerifySSL == nil || *u.VerifySSL
}

// RateLimitConfig sizes the shared request budget
type RateLimitConfig struct {
	Strategy string        `yaml:"strategy"`
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// CacheConfig selects the response cache backend and lifetimes
type CacheConfig struct {
	Backend   string    `yaml:"backend"`
	MaxSizeMB int       `yaml:"max_size_mb"`
	TTL       TTLConfig `yaml:"ttl"`
}

// TTLConfig holds per-operation cache lifetimes
type TTLConfig struct {
	Teams   time.Duration `yaml:"teams"`
	Players time.Duration `yaml:"players"`
	Games   time.Duration `yaml:"games"`
	Game    time.Duration `yaml:"game"`
}

// RedisConfig configures the optional Redis connection. An empty address disables Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// UsageConfig configures the usage ledger. An empty DSN disables the table sink.
type UsageConfig struct {
	DSN           string        `yaml:"dsn"`
	Stream        bool          `yaml:"stream"`
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// Enabled reports whether any usage sink is configured
func (u UsageConfig) Enabled() bool {
	return u.DSN != "" || u.Stream
}

// WarmerConfig configures the teams cache warmer
type WarmerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// ServerConfig selects the tool transport
type ServerConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

// LogConfig sets the log level
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads the file at path (skipped when empty), applies environment
// overrides and defaults, then validates the result.
func Load(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path, logger)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.applyEnv(logger)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = balldontlie.DefaultBaseURL
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = balldontlie.DefaultTimeout
	}

	if c.RateLimit.Strategy == "" {
		c.RateLimit.Strategy = ratelimit.StrategyFixedWindow
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = ratelimit.DefaultLimit
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = ratelimit.DefaultWindow
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = cache.BackendMemory
	}
	if c.Cache.MaxSizeMB == 0 {
		c.Cache.MaxSizeMB = cache.DefaultMaxSizeMB
	}
	if c.Cache.TTL.Teams == 0 {
		c.Cache.TTL.Teams = 12 * time.Hour
	}
	if c.Cache.TTL.Players == 0 {
		c.Cache.TTL.Players = time.Hour
	}
	if c.Cache.TTL.Games == 0 {
		c.Cache.TTL.Games = 30 * time.Second
	}
	if c.Cache.TTL.Game == 0 {
		c.Cache.TTL.Game = 30 * time.Second
	}

	if c.Usage.BatchSize == 0 {
		c.Usage.BatchSize = 100
	}
	if c.Usage.FlushInterval == 0 {
		c.Usage.FlushInterval = 5 * time.Second
	}

	if c.Warmer.Interval == 0 {
		c.Warmer.Interval = 6 * time.Hour
	}

	if c.Server.Transport == "" {
		c.Server.Transport = TransportStdio
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv(logger *zap.Logger) {
	c.Upstream.APIKey = getEnv("BALLDONTLIE_API_KEY", c.Upstream.APIKey)
	c.Upstream.BaseURL = getEnv("BALLDONTLIE_BASE_URL", c.Upstream.BaseURL)
	if raw := os.Getenv("VERIFY_SSL"); raw != "" {
		if verify, err := strconv.ParseBool(raw); err == nil {
			c.Upstream.VerifySSL = &verify
		} else {
			logger.Warn("ignoring invalid VERIFY_SSL", zap.String("value", raw))
		}
	}
	c.Upstream.Timeout = getEnvDuration(logger, "JANUS_UPSTREAM_TIMEOUT", c.Upstream.Timeout)

	c.RateLimit.Requests = getEnvInt(logger, "JANUS_RATE_LIMIT", c.RateLimit.Requests)
	c.RateLimit.Window = getEnvDuration(logger, "JANUS_RATE_WINDOW", c.RateLimit.Window)
	c.RateLimit.Strategy = getEnv("JANUS_RATE_STRATEGY", c.RateLimit.Strategy)

	c.Cache.Backend = getEnv("JANUS_CACHE_BACKEND", c.Cache.Backend)

	c.Redis.Addr = getEnv("REDIS_URL", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)

	c.Usage.DSN = getEnv("JANUS_USAGE_DSN", c.Usage.DSN)

	c.Server.Transport = getEnv("JANUS_TRANSPORT", c.Server.Transport)
	c.Server.Port = getEnvInt(logger, "PORT", c.Server.Port)

	c.Log.Level = getEnv("JANUS_LOG_LEVEL", c.Log.Level)
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be positive, got %v", c.Upstream.Timeout)
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %v", c.RateLimit.Window)
	}
	switch c.RateLimit.Strategy {
	case ratelimit.StrategyFixedWindow, ratelimit.StrategyTokenBucket:
	default:
		return fmt.Errorf("unknown rate_limit.strategy %q", c.RateLimit.Strategy)
	}

	switch c.Cache.Backend {
	case cache.BackendMemory, cache.BackendNone:
	case cache.BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("cache.backend %q requires redis.addr", cache.BackendRedis)
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}
	if c.Cache.MaxSizeMB < 0 {
		return fmt.Errorf("cache.max_size_mb must not be negative, got %d", c.Cache.MaxSizeMB)
	}
	for name, ttl := range map[string]time.Duration{
		"teams":   c.Cache.TTL.Teams,
		"players": c.Cache.TTL.Players,
		"games":   c.Cache.TTL.Games,
		"game":    c.Cache.TTL.Game,
	} {
		if ttl <= 0 {
			return fmt.Errorf("cache.ttl.%s must be positive, got %v", name, ttl)
		}
	}

	if c.Usage.Stream && c.Redis.Addr == "" {
		return fmt.Errorf("usage.stream requires redis.addr")
	}
	if c.Usage.BatchSize <= 0 {
		return fmt.Errorf("usage.batch_size must be positive, got %d", c.Usage.BatchSize)
	}

	if c.Warmer.Enabled && c.Warmer.Interval <= 0 {
		return fmt.Errorf("warmer.interval must be positive, got %v", c.Warmer.Interval)
	}

	switch strings.ToLower(c.Server.Transport) {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("unknown server.transport %q", c.Server.Transport)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(logger *zap.Logger, key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("ignoring invalid integer environment variable", zap.String("key", key), zap.String("value", raw))
		return defaultValue
	}
	return v
}

func getEnvDuration(logger *zap.Logger, key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warn("ignoring invalid duration environment variable", zap.String("key", key), zap.String("value", raw))
		return defaultValue
	}
	return v
}
