package basketball_nba

import (
	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Config contains NBA-specific provider conventions
type Config struct {
	League      models.LeagueID
	DisplayName string

	// PathPrefix is prepended to every provider endpoint
	PathPrefix string

	// PlayersParams and GamesParams rename logical filters into provider parameters
	PlayersParams balldontlie.ParamTable
	GamesParams   balldontlie.ParamTable
}

// DefaultConfig returns the BallDontLie NBA conventions
func DefaultConfig() *Config {
	return &Config{
		League:      models.LeagueNBA,
		DisplayName: "NBA Basketball",
		PathPrefix:  "/v1",

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
			"cursor":   "cursor",
			"per_page": "per_page",
		},
	}
}
