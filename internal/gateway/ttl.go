package gateway

import "time"

// Operation names, shared by the tool surface and cache signatures
const (
	OpGetTeams   = "get_teams"
	OpGetPlayers = "get_players"
	OpGetGames   = "get_games"
	OpGetGame    = "get_game"
)

// Operations returns every operation name in a stable order
func Operations() []string {
	return []string{OpGetTeams, OpGetPlayers, OpGetGames, OpGetGame}
}

// TTLPolicy holds the cache lifetime of each operation.
// A zero TTL disables caching for that operation.
type TTLPolicy struct {
	Teams   time.Duration
	Players time.Duration
	Games   time.Duration
	Game    time.Duration
}

// DefaultTTLPolicy returns long lifetimes for reference data and short ones for game data
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Teams:   12 * time.Hour,
		Players: time.Hour,
		Games:   30 * time.Second,
		Game:    30 * time.Second,
	}
}

// Longest returns the largest lifetime in the policy
func (p TTLPolicy) Longest() time.Duration {
	longest := p.Teams
	for _, d := range []time.Duration{p.Players, p.Games, p.Game} {
		if d > longest {
			longest = d
		}
	}
	return longest
}

func (p TTLPolicy) forOperation(op string) time.Duration {
	switch op {
	case OpGetTeams:
		return p.Teams
	case OpGetPlayers:
		return p.Players
	case OpGetGames:
		return p.Games
	case OpGetGame:
		return p.Game
	}
	return 0
}
