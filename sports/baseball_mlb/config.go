package baseball_mlb

import (
	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Config contains MLB-specific provider conventions
type Config struct {
	League      models.LeagueID
	DisplayName string
	PathPrefix  string

	PlayersParams balldontlie.ParamTable
	GamesParams   balldontlie.ParamTable
}

// DefaultConfig returns the BallDontLie MLB conventions
func DefaultConfig() *Config {
	return &Config{
		League:      models.LeagueMLB,
		DisplayName: "MLB Baseball",
		PathPrefix:  "/mlb/v1",

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
