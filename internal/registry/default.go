package registry

import (
	"github.com/XavierBriggs/Janus/sports/americanfootball_nfl"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
	"github.com/XavierBriggs/Janus/sports/basketball_nba"
)

// NewDefault returns a registry with every supported league registered
func NewDefault() *LeagueRegistry {
	r := NewLeagueRegistry()
	// Registration cannot collide: each module serves a distinct league.
	_ = r.Register(basketball_nba.NewModule())
	_ = r.Register(baseball_mlb.NewModule())
	_ = r.Register(americanfootball_nfl.NewModule())
	return r
}
