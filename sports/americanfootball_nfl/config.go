package americanfootball_nfl

import (
	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Config contains NFL-specific provider conventions
type Config struct {
	League      models.LeagueID
	DisplayName string
	PathPrefix  string

	PlayersParams balldontlie.ParamTable
	GamesParams   balldontlie.ParamTable
}

// DefaultConfig returns the BallDontLie NFL conventions.
// The NFL games endpoint is the only one that filters by week.
func DefaultConfig() *Config {
	return &Config{
		League:      models.LeagueNFL,
		DisplayName: "NFL Football",
		PathPrefix:  "/nfl/v1",

		PlayersParams: balldontlie.ParamTable{
			"first_name": "first_name",
			"last_name":  "last_name",
			"cursor":     "cursor",
			"per_page":   "per_page",
		},

		GamesParams: balldontlie.ParamTable{
			"dates":    "dates[]",
			"seasons":  "seasons[]",
			"team_ids": "team_ids[]",
			"weeks":    "weeks[]",
			"cursor":   "cursor",
			"per_page": "per_page",
		},
	}
}
