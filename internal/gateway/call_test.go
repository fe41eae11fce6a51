package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/pkg/testutil"
)

func TestCall_DispatchesWithJSONShapedArguments(t *testing.T) {
	h := newHarness(t, nil)
	h.upstream.On("/nfl/v1/games", testutil.NFLGamesPayload)

	env := h.gw.Call(context.Background(), OpGetGames, map[string]any{
		"league":   "nfl",
		"dates":    "2024-09-05, 2024-09-08",
		"seasons":  []any{float64(2024)},
		"team_ids": []any{"18", float64(3)},
		"weeks":    float64(1),
		"per_page": "50",
	})

	require.True(t, env.IsSuccess(), env.ErrorMessage)
	require.Equal(t, 1, h.upstream.Calls())

	req := h.upstream.Requests()[0]
	assert.Equal(t, "/nfl/v1/games", req.Path)
	assert.Equal(t, []string{"2024-09-05", "2024-09-08"}, req.Params["dates[]"])
	assert.Equal(t, []string{"2024"}, req.Params["seasons[]"])
	assert.Equal(t, []string{"18", "3"}, req.Params["team_ids[]"])
	assert.Equal(t, []string{"1"}, req.Params["weeks[]"])
	assert.Equal(t, "50", req.Params.Get("per_page"))
}

func TestCall_WeeksDroppedOutsideNFL(t *testing.T) {
	h := newHarness(t, nil)
	h.upstream.On("/v1/games", testutil.NBAGamesPayload)

	env := h.gw.Call(context.Background(), OpGetGames, map[string]any{
		"league": "NBA",
		"weeks":  []any{float64(3)},
	})

	require.True(t, env.IsSuccess(), env.ErrorMessage)
	req := h.upstream.Requests()[0]
	assert.NotContains(t, req.Params, "weeks[]")
	assert.NotContains(t, req.Params, "weeks")
}

func TestCall_GetGameWithNumericID(t *testing.T) {
	h := newHarness(t, nil)
	h.upstream.On("/v1/games/1001", testutil.NBAGamePayload)

	env := h.gw.Call(context.Background(), OpGetGame, map[string]any{
		"league":  "NBA",
		"game_id": float64(1001),
		"live":    "true",
	})

	require.True(t, env.IsSuccess(), env.ErrorMessage)
	assert.False(t, env.Meta.Cached)
}

func TestCall_TeamsAndPlayers(t *testing.T) {
	h := newHarness(t, nil)
	h.upstream.On("/mlb/v1/teams", testutil.MLBTeamsPayload)
	h.upstream.On("/mlb/v1/players", testutil.MLBPlayersPayload)

	teams := h.gw.Call(context.Background(), OpGetTeams, map[string]any{"league": "MLB"})
	require.True(t, teams.IsSuccess(), teams.ErrorMessage)

	players := h.gw.Call(context.Background(), OpGetPlayers, map[string]any{
		"league":    "MLB",
		"last_name": "Judge",
	})
	require.True(t, players.IsSuccess(), players.ErrorMessage)
	assert.Equal(t, "Judge", h.upstream.Requests()[1].Params.Get("last_name"))
}

func TestCall_Rejections(t *testing.T) {
	tests := []struct {
		name string
		op   string
		args map[string]any
		want string
	}{
		{"unknown operation", "get_standings", map[string]any{"league": "NBA"}, "unknown operation"},
		{"missing league", OpGetTeams, map[string]any{}, "league"},
		{"league of wrong type", OpGetTeams, map[string]any{"league": []any{"NBA"}}, "league"},
		{"fractional season", OpGetGames, map[string]any{"league": "NBA", "seasons": float64(2023.5)}, "seasons"},
		{"non-numeric team id", OpGetGames, map[string]any{"league": "NBA", "team_ids": "lakers"}, "team_ids"},
		{"zero per_page", OpGetPlayers, map[string]any{"league": "NBA", "per_page": float64(0)}, "per_page"},
		{"bad live flag", OpGetGame, map[string]any{"league": "NBA", "game_id": "1", "live": "sometimes"}, "live"},
		{"missing game id", OpGetGame, map[string]any{"league": "NBA"}, "game_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil)

			env := h.gw.Call(context.Background(), tt.op, tt.args)

			assert.Equal(t, models.StatusError, env.Status)
			assert.Equal(t, models.ErrorTypeValidation, env.ErrorType)
			assert.Contains(t, env.ErrorMessage, tt.want)
			assert.Zero(t, h.upstream.Calls())
			assert.Zero(t, h.limiter.Acquisitions())
		})
	}
}

func TestParseWhole(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{"12.0", 12, false},
		{"-4", -4, false},
		{"12.5", 0, true},
		{"1e3", 1000, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseWhole(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
