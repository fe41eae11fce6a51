package balldontlie

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XavierBriggs/Janus/pkg/models"
)

func TestParamTable_Apply(t *testing.T) {
	table := ParamTable{"dates": "dates[]", "cursor": "cursor"}

	out := table.Apply(url.Values{
		"dates":  {"2024-01-01", "2024-01-02"},
		"cursor": {"abc"},
		"weeks":  {"3"},
	})

	assert.Equal(t, url.Values{
		"dates[]": {"2024-01-01", "2024-01-02"},
		"cursor":  {"abc"},
	}, out)
}

func TestPlayersParams(t *testing.T) {
	assert.Empty(t, PlayersParams(models.PlayersQuery{}))

	params := PlayersParams(models.PlayersQuery{FirstName: "Aaron", Cursor: "10", PerPage: 50})
	assert.Equal(t, url.Values{
		"first_name": {"Aaron"},
		"cursor":     {"10"},
		"per_page":   {"50"},
	}, params)
}

func TestGamesParams(t *testing.T) {
	params := GamesParams(models.GamesQuery{
		Dates:   []string{"2024-01-15"},
		Seasons: []int{2023, 2024},
		TeamIDs: []int{14},
		Weeks:   []int{1},
		Live:    true,
	})

	assert.Equal(t, url.Values{
		"dates":    {"2024-01-15"},
		"seasons":  {"2023", "2024"},
		"team_ids": {"14"},
		"weeks":    {"1"},
	}, params, "live is a gateway concern and never reaches the provider")
}
