package baseball_mlb

import (
	"fmt"
	"net/url"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Module implements the LeagueAdapter interface for MLB Baseball
type Module struct {
	config *Config
}

// Ensure Module implements LeagueAdapter
var _ contracts.LeagueAdapter = (*Module)(nil)

// NewModule creates a new MLB league module
func NewModule() *Module {
	return &Module{config: DefaultConfig()}
}

// League returns the league identifier
func (m *Module) League() models.LeagueID {
	return m.config.League
}

// DisplayName returns the human-readable name
func (m *Module) DisplayName() string {
	return m.config.DisplayName
}

// TeamsRequest builds the teams listing request
func (m *Module) TeamsRequest() models.UpstreamRequest {
	return models.UpstreamRequest{Path: m.config.PathPrefix + "/teams", Params: url.Values{}}
}

// PlayersRequest builds the players listing request
func (m *Module) PlayersRequest(q models.PlayersQuery) models.UpstreamRequest {
	return models.UpstreamRequest{
		Path:   m.config.PathPrefix + "/players",
		Params: m.config.PlayersParams.Apply(balldontlie.PlayersParams(q)),
	}
}

// GamesRequest builds the games listing request
func (m *Module) GamesRequest(q models.GamesQuery) models.UpstreamRequest {
	return models.UpstreamRequest{
		Path:   m.config.PathPrefix + "/games",
		Params: m.config.GamesParams.Apply(balldontlie.GamesParams(q)),
	}
}

// GameRequest builds the single game request
func (m *Module) GameRequest(gameID string) models.UpstreamRequest {
	return models.UpstreamRequest{
		Path:   fmt.Sprintf("%s/games/%s", m.config.PathPrefix, url.PathEscape(gameID)),
		Params: url.Values{},
	}
}

// NormalizeTeams maps an MLB teams payload into the uniform shape
func (m *Module) NormalizeTeams(body []byte) (*models.Result, error) {
	page, err := balldontlie.DecodePage(body)
	if err != nil {
		return nil, err
	}

	raw := balldontlie.DecodeList[teamResponse](page)
	teams := make([]models.Team, 0, len(raw))
	for _, t := range raw {
		teams = append(teams, *t.toTeam())
	}
	return &models.Result{Teams: teams, NextCursor: page.NextCursor()}, nil
}

// NormalizePlayers maps an MLB players payload into the uniform shape
func (m *Module) NormalizePlayers(body []byte) (*models.Result, error) {
	page, err := balldontlie.DecodePage(body)
	if err != nil {
		return nil, err
	}

	raw := balldontlie.DecodeList[playerResponse](page)
	players := make([]models.Player, 0, len(raw))
	for _, p := range raw {
		players = append(players, p.toPlayer())
	}
	return &models.Result{Players: players, NextCursor: page.NextCursor()}, nil
}

// NormalizeGames maps an MLB games payload into the uniform shape
func (m *Module) NormalizeGames(body []byte) (*models.Result, error) {
	page, err := balldontlie.DecodePage(body)
	if err != nil {
		return nil, err
	}

	raw := balldontlie.DecodeList[gameResponse](page)
	games := make([]models.Game, 0, len(raw))
	for _, g := range raw {
		games = append(games, g.toGame())
	}
	return &models.Result{Games: games, NextCursor: page.NextCursor()}, nil
}

// NormalizeGame maps an MLB single-game payload into the uniform shape
func (m *Module) NormalizeGame(body []byte) (*models.Result, error) {
	page, err := balldontlie.DecodePage(body)
	if err != nil {
		return nil, err
	}

	raw, ok := balldontlie.DecodeObject[gameResponse](page)
	if !ok {
		return nil, fmt.Errorf("%w: response has no game object", balldontlie.ErrMalformedPayload)
	}

	game := raw.toGame()
	return &models.Result{Game: &game}, nil
}
