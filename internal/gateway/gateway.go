// Package gateway serves the sports-data operations.
//
// Every operation follows the same path: validate the input, consult the
// response cache, and on a miss take a rate limit slot, call the provider
// through the league adapter and cache the normalized result. Callers only
// ever see an envelope; no error or panic crosses the operation boundary.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/internal/cache"
	"github.com/XavierBriggs/Janus/internal/metrics"
	"github.com/XavierBriggs/Janus/internal/registry"
	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Gateway routes operations through cache, rate limiter and league adapters
type Gateway struct {
	registry *registry.LeagueRegistry
	limiter  contracts.Limiter
	cache    *cache.ResponseCache
	upstream contracts.Upstream
	usage    contracts.UsageRecorder
	ttl      TTLPolicy
	clock    clock.Clock
	logger   *zap.Logger
}

// Option customizes a Gateway
type Option func(*Gateway)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithTTLPolicy overrides the per-operation cache lifetimes
func WithTTLPolicy(p TTLPolicy) Option {
	return func(g *Gateway) { g.ttl = p }
}

// WithUsageRecorder receives one record per upstream call
func WithUsageRecorder(r contracts.UsageRecorder) Option {
	return func(g *Gateway) { g.usage = r }
}

// WithClock injects the clock used to time upstream calls
func WithClock(c clock.Clock) Option {
	return func(g *Gateway) { g.clock = c }
}

// New creates a gateway. A nil cache disables caching.
func New(reg *registry.LeagueRegistry, limiter contracts.Limiter, rc *cache.ResponseCache, upstream contracts.Upstream, opts ...Option) *Gateway {
	g := &Gateway{
		registry: reg,
		limiter:  limiter,
		cache:    rc,
		upstream: upstream,
		ttl:      DefaultTTLPolicy(),
		clock:    clock.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = cache.New(cache.NewNoOpStore())
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// plan is a validated operation ready to be served
type plan struct {
	league    models.LeagueID
	params    url.Values
	live      bool
	request   func() models.UpstreamRequest
	normalize func([]byte) (*models.Result, error)
}

// GetTeams lists every team of a league
func (g *Gateway) GetTeams(ctx context.Context, league string) models.Envelope {
	return g.serve(ctx, OpGetTeams, func() (*plan, error) {
		adapter, err := g.adapter(league)
		if err != nil {
			return nil, err
		}
		return &plan{
			league:    adapter.League(),
			request:   adapter.TeamsRequest,
			normalize: adapter.NormalizeTeams,
		}, nil
	})
}

// GetPlayers lists players of a league, optionally filtered by name
func (g *Gateway) GetPlayers(ctx context.Context, league string, q models.PlayersQuery) models.Envelope {
	return g.serve(ctx, OpGetPlayers, func() (*plan, error) {
		adapter, err := g.adapter(league)
		if err != nil {
			return nil, err
		}
		q, err := validatePlayersQuery(q)
		if err != nil {
			return nil, err
		}
		return &plan{
			league:    adapter.League(),
			params:    balldontlie.PlayersParams(q),
			request:   func() models.UpstreamRequest { return adapter.PlayersRequest(q) },
			normalize: adapter.NormalizePlayers,
		}, nil
	})
}

// GetGames lists games of a league. q.Live skips the cache in both directions.
func (g *Gateway) GetGames(ctx context.Context, league string, q models.GamesQuery) models.Envelope {
	return g.serve(ctx, OpGetGames, func() (*plan, error) {
		adapter, err := g.adapter(league)
		if err != nil {
			return nil, err
		}
		q, err := validateGamesQuery(q)
		if err != nil {
			return nil, err
		}
		return &plan{
			league:    adapter.League(),
			params:    balldontlie.GamesParams(q),
			live:      q.Live,
			request:   func() models.UpstreamRequest { return adapter.GamesRequest(q) },
			normalize: adapter.NormalizeGames,
		}, nil
	})
}

// GetGame fetches a single game by its provider id
func (g *Gateway) GetGame(ctx context.Context, league, gameID string, live bool) models.Envelope {
	return g.serve(ctx, OpGetGame, func() (*plan, error) {
		adapter, err := g.adapter(league)
		if err != nil {
			return nil, err
		}
		gameID, err := validateGameID(gameID)
		if err != nil {
			return nil, err
		}
		return &plan{
			league:    adapter.League(),
			params:    url.Values{"game_id": {gameID}},
			live:      live,
			request:   func() models.UpstreamRequest { return adapter.GameRequest(gameID) },
			normalize: adapter.NormalizeGame,
		}, nil
	})
}

// Leagues returns the leagues the gateway can serve
func (g *Gateway) Leagues() []models.LeagueID {
	adapters := g.registry.GetAll()
	leagues := make([]models.LeagueID, 0, len(adapters))
	for _, a := range adapters {
		leagues = append(leagues, a.League())
	}
	return leagues
}

// RateLimits returns the provider-reported budget of the last upstream reply
func (g *Gateway) RateLimits() models.RateLimits {
	return g.upstream.RateLimits()
}

func (g *Gateway) adapter(raw string) (contracts.LeagueAdapter, error) {
	league, err := models.ParseLeague(raw)
	if err != nil {
		return nil, err
	}
	adapter, ok := g.registry.Get(league)
	if !ok {
		return nil, models.NewValidationError("league", "league %s is not enabled", league)
	}
	return adapter, nil
}

// serve runs one operation and converts every outcome into an envelope
func (g *Gateway) serve(ctx context.Context, op string, prepare func() (*plan, error)) (env models.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("recovered panic while serving operation",
				zap.String("operation", op),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			env = models.ErrorEnvelope(fmt.Errorf("internal error while serving %s: %v", op, r))
		}
		metrics.RecordEnvelope(op, env.Status, env.ErrorType)
	}()

	p, err := prepare()
	if err != nil {
		g.logger.Debug("rejected invalid request", zap.String("operation", op), zap.Error(err))
		return models.ErrorEnvelope(err)
	}

	sig := cache.NewSignature(op, p.league, p.params)
	logger := g.logger.With(
		zap.String("operation", op),
		zap.String("league", p.league.String()),
	)

	if p.live {
		metrics.RecordCacheLookup(op, "bypass")
	} else if result, ok := g.cache.Get(sig); ok {
		metrics.RecordCacheLookup(op, "hit")
		logger.Debug("cache hit", zap.String("signature", sig.String()))
		return models.SuccessEnvelope(result, true)
	} else {
		metrics.RecordCacheLookup(op, "miss")
	}

	result, err := g.fetch(ctx, op, p, logger)
	if err != nil {
		logger.Warn("operation failed", zap.Error(err))
		return models.ErrorEnvelope(err)
	}

	if !p.live {
		g.cache.Put(sig, result, g.ttl.forOperation(op))
	}
	return models.SuccessEnvelope(result, false)
}

// fetch takes a rate limit slot and performs exactly one upstream call
func (g *Gateway) fetch(ctx context.Context, op string, p *plan, logger *zap.Logger) (*models.Result, error) {
	waited, err := g.limiter.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("waiting for rate limit slot: %w", err)
	}
	metrics.RecordAcquisition(waited)
	if waited > 0 {
		logger.Info("resumed after rate limit suspension", zap.Duration("wait", waited))
	}

	req := p.request()
	start := g.clock.Now()
	body, err := g.upstream.Get(ctx, req)
	duration := g.clock.Since(start)

	rec := models.UsageRecord{
		ID:        uuid.NewString(),
		League:    p.league,
		Operation: op,
		Path:      req.Path,
		Duration:  duration,
		Waited:    waited,
		At:        start,
	}

	if err != nil {
		status := httpStatus(err)
		outcome := "error"
		if status != 0 {
			outcome = "http_error"
		}
		metrics.RecordUpstream(p.league.String(), op, outcome, duration)

		rec.StatusCode = status
		rec.Error = err.Error()
		g.record(ctx, rec)

		return nil, &models.UpstreamError{Operation: op, League: p.league, StatusCode: status, Err: err}
	}

	metrics.RecordUpstream(p.league.String(), op, "success", duration)
	rec.StatusCode = 200
	g.record(ctx, rec)

	logger.Debug("upstream call complete",
		zap.String("path", req.Path),
		zap.Duration("duration", duration),
	)

	result, err := p.normalize(body)
	if err != nil {
		return nil, &models.UpstreamError{
			Operation: op,
			League:    p.league,
			Err:       fmt.Errorf("decode response: %w", err),
		}
	}
	return result, nil
}

func (g *Gateway) record(ctx context.Context, rec models.UsageRecord) {
	if g.usage == nil {
		return
	}
	g.usage.Record(ctx, rec)
}

// httpStatus extracts the provider status code from a transport error, 0 when none
func httpStatus(err error) int {
	var statusErr interface{ HTTPStatus() int }
	if errors.As(err, &statusErr) {
		return statusErr.HTTPStatus()
	}
	return 0
}

