package registry

import (
	"fmt"
	"sync"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// LeagueRegistry manages registered league adapters
type LeagueRegistry struct {
	leagues map[models.LeagueID]contracts.LeagueAdapter
	mu      sync.RWMutex
}

// NewLeagueRegistry creates a new league registry
func NewLeagueRegistry() *LeagueRegistry {
	return &LeagueRegistry{
		leagues: make(map[models.LeagueID]contracts.LeagueAdapter),
	}
}

// Register adds a league adapter to the registry
func (r *LeagueRegistry) Register(adapter contracts.LeagueAdapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	league := adapter.League()
	if _, exists := r.leagues[league]; exists {
		return fmt.Errorf("league %s is already registered", league)
	}

	r.leagues[league] = adapter
	return nil
}

// Get retrieves a league adapter by id
func (r *LeagueRegistry) Get(league models.LeagueID) (contracts.LeagueAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, exists := r.leagues[league]
	return adapter, exists
}

// GetAll returns all registered adapters in the canonical league order
func (r *LeagueRegistry) GetAll() []contracts.LeagueAdapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapters := make([]contracts.LeagueAdapter, 0, len(r.leagues))
	for _, league := range models.Leagues() {
		if adapter, ok := r.leagues[league]; ok {
			adapters = append(adapters, adapter)
		}
	}
	return adapters
}

// Count returns the number of registered leagues
func (r *LeagueRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.leagues)
}
