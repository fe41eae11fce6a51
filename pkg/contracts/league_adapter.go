package contracts

import (
	"github.com/XavierBriggs/Janus/pkg/models"
)

// LeagueAdapter defines the interface for league-specific request building and
// response normalization. One implementation exists per supported league.
type LeagueAdapter interface {
	// League returns the league this adapter serves (e.g., models.LeagueNBA)
	League() models.LeagueID

	// DisplayName returns the human-readable name (e.g., "NBA Basketball")
	DisplayName() string

	// TeamsRequest builds the provider request listing all teams
	TeamsRequest() models.UpstreamRequest

	// PlayersRequest builds the provider request listing players
	PlayersRequest(q models.PlayersQuery) models.UpstreamRequest

	// GamesRequest builds the provider request listing games
	GamesRequest(q models.GamesQuery) models.UpstreamRequest

	// GameRequest builds the provider request for a single game
	GameRequest(gameID string) models.UpstreamRequest

	// NormalizeTeams maps a provider teams payload into the uniform shape
	NormalizeTeams(body []byte) (*models.Result, error)

	// NormalizePlayers maps a provider players payload into the uniform shape
	NormalizePlayers(body []byte) (*models.Result, error)

	// NormalizeGames maps a provider games payload into the uniform shape
	NormalizeGames(body []byte) (*models.Result, error)

	// NormalizeGame maps a provider single-game payload into the uniform shape
	NormalizeGame(body []byte) (*models.Result, error)
}
