// Package warmer keeps slow-changing reference data in the response cache.
package warmer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// TeamsSource is the part of the gateway the warmer drives
type TeamsSource interface {
	GetTeams(ctx context.Context, league string) models.Envelope
	Leagues() []models.LeagueID
}

// Warmer periodically requests the team list of every league so callers hit a
// warm cache. Requests go through the gateway and spend the shared rate budget.
type Warmer struct {
	source   TeamsSource
	interval time.Duration
	logger   *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a warmer that runs every interval
func New(source TeamsSource, interval time.Duration, logger *zap.Logger) *Warmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Warmer{
		source:   source,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start warms immediately, then on every tick until Stop or ctx is done
func (w *Warmer) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.WarmOnce(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.WarmOnce(ctx)
			case <-w.stopChan:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the background loop and waits for an in-flight pass to finish
func (w *Warmer) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
}

// WarmOnce requests teams for each league and returns how many succeeded
func (w *Warmer) WarmOnce(ctx context.Context) int {
	warmed := 0
	for _, league := range w.source.Leagues() {
		select {
		case <-w.stopChan:
			return warmed
		case <-ctx.Done():
			return warmed
		default:
		}

		env := w.source.GetTeams(ctx, league.String())
		if !env.IsSuccess() {
			w.logger.Warn("cache warm failed",
				zap.String("league", league.String()),
				zap.String("error", env.ErrorMessage),
			)
			continue
		}

		warmed++
		w.logger.Debug("cache warmed",
			zap.String("league", league.String()),
			zap.Bool("cached", env.Meta != nil && env.Meta.Cached),
		)
	}
	return warmed
}
