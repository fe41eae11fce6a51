package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/internal/cache"
	"github.com/XavierBriggs/Janus/internal/config"
	"github.com/XavierBriggs/Janus/internal/gateway"
	"github.com/XavierBriggs/Janus/internal/mcpserver"
	"github.com/XavierBriggs/Janus/internal/ratelimit"
	"github.com/XavierBriggs/Janus/internal/registry"
	"github.com/XavierBriggs/Janus/internal/usage"
	"github.com/XavierBriggs/Janus/internal/warmer"
)

var version = "dev"

func main() {
	bootstrap, err := newLogger(os.Getenv("JANUS_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("JANUS_CONFIG"), bootstrap)
	if err != nil {
		bootstrap.Fatal("failed to load configuration", zap.Error(err))
	}
	_ = bootstrap.Sync()

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		bootstrap.Fatal("failed to create logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("janus exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("janus stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Optional Redis connection (cache backend and usage stream)
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	// Optional usage database
	var db *sql.DB
	if cfg.Usage.DSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.Usage.DSN)
		if err != nil {
			return fmt.Errorf("open usage database: %w", err)
		}
		defer db.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("ping usage database: %w", err)
		}
		logger.Info("connected to usage database")
	}

	reg := registry.NewDefault()
	logger.Info("registered leagues", zap.Int("count", reg.Count()))

	if cfg.Upstream.APIKey == "" {
		logger.Warn("BALLDONTLIE_API_KEY not set, using the unauthenticated tier",
			zap.Int("max_requests", ratelimit.UnauthenticatedLimit))
	}
	limit := ratelimit.EffectiveLimit(cfg.RateLimit.Requests, cfg.Upstream.APIKey)
	limiter, err := ratelimit.New(ratelimit.Config{
		Strategy: cfg.RateLimit.Strategy,
		Limit:    limit,
		Window:   cfg.RateLimit.Window,
	}, ratelimit.WithLogger(logger.Named("ratelimit")))
	if err != nil {
		return fmt.Errorf("create rate limiter: %w", err)
	}

	ttl := gateway.TTLPolicy{
		Teams:   cfg.Cache.TTL.Teams,
		Players: cfg.Cache.TTL.Players,
		Games:   cfg.Cache.TTL.Games,
		Game:    cfg.Cache.TTL.Game,
	}

	store, err := cache.NewStore(cache.StoreConfig{
		Backend:    cfg.Cache.Backend,
		MaxSizeMB:  cfg.Cache.MaxSizeMB,
		LifeWindow: ttl.Longest(),
	}, redisClient, logger.Named("cache"))
	if err != nil {
		return fmt.Errorf("create cache store: %w", err)
	}
	responseCache := cache.New(store, cache.WithLogger(logger.Named("cache")))
	defer responseCache.Close()

	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL:   cfg.Upstream.BaseURL,
		APIKey:    cfg.Upstream.APIKey,
		Timeout:   cfg.Upstream.Timeout,
		VerifySSL: cfg.Upstream.VerifyTLS(),
	}, logger.Named("upstream"))

	opts := []gateway.Option{
		gateway.WithLogger(logger.Named("gateway")),
		gateway.WithTTLPolicy(ttl),
	}

	if cfg.Usage.Enabled() {
		var streamClient *redis.Client
		if cfg.Usage.Stream {
			streamClient = redisClient
		}
		ledger := usage.NewLedger(db, streamClient,
			usage.WithBatchSize(cfg.Usage.BatchSize),
			usage.WithFlushInterval(cfg.Usage.FlushInterval),
			usage.WithLogger(logger.Named("usage")),
		)
		ledger.Start(ctx)
		defer ledger.Stop()
		opts = append(opts, gateway.WithUsageRecorder(ledger))
	}

	gw := gateway.New(reg, limiter, responseCache, client, opts...)

	if cfg.Warmer.Enabled {
		w := warmer.New(gw, cfg.Warmer.Interval, logger.Named("warmer"))
		w.Start(ctx)
		defer w.Stop()
	}

	logger.Info("janus started",
		zap.String("version", version),
		zap.String("transport", cfg.Server.Transport),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("rate_strategy", cfg.RateLimit.Strategy),
		zap.Int("rate_limit", limit),
		zap.Duration("rate_window", cfg.RateLimit.Window),
	)

	srv := mcpserver.New(gw, version, logger.Named("mcp"))
	switch strings.ToLower(cfg.Server.Transport) {
	case config.TransportSSE:
		return srv.ServeSSE(ctx, cfg.Server.Port, os.Getenv("PUBLIC_URL"))
	default:
		return srv.ServeStdio(ctx)
	}
}

// newLogger builds a production logger, or a development logger at debug level.
// Both write to stderr so stdout stays reserved for the stdio transport.
func newLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	if parsed == zapcore.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(parsed)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
