package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XavierBriggs/Janus/pkg/models"
)

func TestNewSignature_OrderIndependent(t *testing.T) {
	a := NewSignature("get_games", models.LeagueNBA, map[string][]string{
		"a": {"1"},
		"b": {"2"},
	})
	b := NewSignature("get_games", models.LeagueNBA, map[string][]string{
		"b": {"2"},
		"a": {"1"},
	})

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Key(), b.Key())
}

func TestNewSignature_Canonicalisation(t *testing.T) {
	base := NewSignature("get_games", models.LeagueNBA, map[string][]string{
		"dates": {"2024-01-01", "2024-01-02"},
	})

	tests := []struct {
		name   string
		params map[string][]string
	}{
		{"values reordered", map[string][]string{"dates": {"2024-01-02", "2024-01-01"}}},
		{"duplicate values", map[string][]string{"dates": {"2024-01-02", "2024-01-01", "2024-01-02"}}},
		{"empty parameter dropped", map[string][]string{"dates": {"2024-01-01", "2024-01-02"}, "cursor": {""}}},
		{"blank value dropped", map[string][]string{"dates": {"2024-01-01", " ", "2024-01-02"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := NewSignature("get_games", models.LeagueNBA, tt.params)
			assert.Equal(t, base.Key(), sig.Key())
		})
	}
}

func TestNewSignature_Distinguishes(t *testing.T) {
	params := map[string][]string{"first_name": {"LeBron"}}

	nba := NewSignature("get_players", models.LeagueNBA, params)
	mlb := NewSignature("get_players", models.LeagueMLB, params)
	teams := NewSignature("get_teams", models.LeagueNBA, params)
	other := NewSignature("get_players", models.LeagueNBA, map[string][]string{"first_name": {"Stephen"}})
	moved := NewSignature("get_players", models.LeagueNBA, map[string][]string{"last_name": {"LeBron"}})

	assert.NotEqual(t, nba.Key(), mlb.Key(), "league must be part of the key")
	assert.NotEqual(t, nba.Key(), teams.Key())
	assert.NotEqual(t, nba.Key(), other.Key())
	assert.NotEqual(t, nba.Key(), moved.Key())
}

func TestSignature_KeyFormat(t *testing.T) {
	sig := NewSignature("get_teams", models.LeagueNFL, nil)

	assert.Regexp(t, `^janus:get_teams:NFL:[0-9a-f]{16}$`, sig.Key())
	assert.Equal(t, "get_teams|NFL|", sig.String())
}
