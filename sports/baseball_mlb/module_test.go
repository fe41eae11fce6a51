package baseball_mlb_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/pkg/testutil"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
)

func TestModule_Requests(t *testing.T) {
	m := baseball_mlb.NewModule()

	assert.Equal(t, models.LeagueMLB, m.League())
	assert.Equal(t, "/mlb/v1/teams", m.TeamsRequest().Path)
	assert.Equal(t, "/mlb/v1/players", m.PlayersRequest(models.PlayersQuery{}).Path)
	assert.Equal(t, "/mlb/v1/games/55001", m.GameRequest("55001").Path)

	games := m.GamesRequest(models.GamesQuery{TeamIDs: []int{10, 11}, Weeks: []int{2}, Cursor: "55002"})
	assert.Equal(t, "/mlb/v1/games", games.Path)
	assert.Equal(t, url.Values{"team_ids[]": {"10", "11"}, "cursor": {"55002"}}, games.Params)
}

func TestModule_NormalizeTeams(t *testing.T) {
	m := baseball_mlb.NewModule()

	result, err := m.NormalizeTeams([]byte(testutil.MLBTeamsPayload))
	require.NoError(t, err)
	require.Len(t, result.Teams, 1)

	assert.Equal(t, models.Team{
		ID:           "10",
		Name:         "Yankees",
		FullName:     "New York Yankees",
		Abbreviation: "NYY",
		City:         "New York",
		Conference:   "American",
		Division:     "East",
		League:       models.LeagueMLB,
	}, result.Teams[0])
}

func TestModule_NormalizePlayersSplitsFullName(t *testing.T) {
	m := baseball_mlb.NewModule()

	result, err := m.NormalizePlayers([]byte(testutil.MLBPlayersPayload))
	require.NoError(t, err)
	require.Len(t, result.Players, 2)

	judge := result.Players[0]
	assert.Equal(t, "Aaron", judge.FirstName)
	assert.Equal(t, "Judge", judge.LastName)
	require.NotNil(t, judge.Team)
	assert.Equal(t, "NYY", judge.Team.Abbreviation)

	ohtani := result.Players[1]
	assert.Equal(t, "Shohei", ohtani.FirstName)
	assert.Equal(t, "Ohtani", ohtani.LastName)
	assert.Nil(t, ohtani.Team)

	assert.Empty(t, result.NextCursor, "a null cursor marks the last page")
}

func TestModule_NormalizeGames(t *testing.T) {
	m := baseball_mlb.NewModule()

	result, err := m.NormalizeGames([]byte(testutil.MLBGamesPayload))
	require.NoError(t, err)
	require.Len(t, result.Games, 1)

	g := result.Games[0]
	assert.Equal(t, "55001", g.ID)
	assert.Equal(t, "final", g.Status)
	assert.Equal(t, 5, *g.Scores.Home)
	assert.Equal(t, 3, *g.Scores.Away)
	assert.Equal(t, "NYY", g.HomeTeam.Abbreviation)

	require.NotNil(t, g.AwayTeam, "away team falls back to the flat team name")
	assert.Equal(t, "Boston Red Sox", g.AwayTeam.Name)
	assert.Equal(t, "55002", result.NextCursor)
}

func TestModule_NormalizeGamesToleratesMissingFields(t *testing.T) {
	m := baseball_mlb.NewModule()

	result, err := m.NormalizeGames([]byte(testutil.PartialGamesPayload))
	require.NoError(t, err)
	require.Len(t, result.Games, 2)

	assert.Equal(t, "g-1", result.Games[0].ID)
	assert.Nil(t, result.Games[0].HomeTeam)
	assert.Nil(t, result.Games[0].Scores.Home)
}

func TestModule_MalformedGame(t *testing.T) {
	m := baseball_mlb.NewModule()

	_, err := m.NormalizeGame([]byte(`{"data": []}`))
	assert.True(t, errors.Is(err, balldontlie.ErrMalformedPayload))

	_, err = m.NormalizeGames([]byte(`not json`))
	assert.True(t, errors.Is(err, balldontlie.ErrMalformedPayload))
}

func TestNormalizeStatus(t *testing.T) {
	tests := map[string]string{
		"STATUS_FINAL":       "final",
		"status_in_progress": "in_progress",
		"STATUS_SCHEDULED":   "scheduled",
		"STATUS_POSTPONED":   "postponed",
		"STATUS_END_PERIOD":  "in_progress",
		"":                   "",
	}

	for in, want := range tests {
		assert.Equal(t, want, baseball_mlb.NormalizeStatus(in), in)
	}
}
