package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
	"github.com/XavierBriggs/Janus/sports/basketball_nba"
)

func TestNewDefault(t *testing.T) {
	r := NewDefault()

	assert.Equal(t, 3, r.Count())
	for _, league := range models.Leagues() {
		adapter, ok := r.Get(league)
		require.True(t, ok, league)
		assert.Equal(t, league, adapter.League())
	}
}

func TestRegister_RejectsDuplicate(t *testing.T) {
	r := NewLeagueRegistry()

	require.NoError(t, r.Register(basketball_nba.NewModule()))
	err := r.Register(basketball_nba.NewModule())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Equal(t, 1, r.Count())
}

func TestGetAll_CanonicalOrder(t *testing.T) {
	r := NewLeagueRegistry()
	require.NoError(t, r.Register(baseball_mlb.NewModule()))
	require.NoError(t, r.Register(basketball_nba.NewModule()))

	all := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.LeagueNBA, all[0].League())
	assert.Equal(t, models.LeagueMLB, all[1].League())
}

func TestGet_Unregistered(t *testing.T) {
	r := NewLeagueRegistry()

	_, ok := r.Get(models.LeagueNFL)
	assert.False(t, ok)
	assert.Empty(t, r.GetAll())
}
