package cache

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XavierBriggs/Janus/pkg/models"
)

func newMemoryCache(t *testing.T, mock *clock.Mock) (*ResponseCache, *MemoryStore) {
	t.Helper()

	store, err := NewMemoryStore(time.Hour, 0, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(store, WithClock(mock)), store
}

func sampleTeams() *models.Result {
	return &models.Result{
		Teams: []models.Team{
			{ID: "14", Name: "Lakers", Abbreviation: "LAL", League: models.LeagueNBA},
			{ID: "2", Name: "Celtics", Abbreviation: "BOS", League: models.LeagueNBA},
		},
	}
}

func TestResponseCache_PutGet(t *testing.T) {
	rc, _ := newMemoryCache(t, clock.NewMock())
	sig := NewSignature("get_teams", models.LeagueNBA, nil)

	_, ok := rc.Get(sig)
	assert.False(t, ok)

	rc.Put(sig, sampleTeams(), time.Minute)

	got, ok := rc.Get(sig)
	require.True(t, ok)
	assert.Equal(t, sampleTeams(), got)
}

func TestResponseCache_LazyExpiry(t *testing.T) {
	mock := clock.NewMock()
	rc, store := newMemoryCache(t, mock)
	sig := NewSignature("get_games", models.LeagueNBA, nil)

	rc.Put(sig, &models.Result{Games: []models.Game{{ID: "1", League: models.LeagueNBA}}}, 30*time.Second)

	mock.Add(29 * time.Second)
	_, ok := rc.Get(sig)
	assert.True(t, ok, "entry must survive until its deadline")

	mock.Add(time.Second)
	_, ok = rc.Get(sig)
	assert.False(t, ok, "entry must be absent at its deadline")

	_, stored := store.Get(sig.Key())
	assert.False(t, stored, "expired entry is removed on lookup")
}

func TestResponseCache_ReplaceWholesale(t *testing.T) {
	rc, _ := newMemoryCache(t, clock.NewMock())
	sig := NewSignature("get_teams", models.LeagueNBA, nil)

	rc.Put(sig, sampleTeams(), time.Minute)
	replacement := &models.Result{Teams: []models.Team{{ID: "1", Name: "Hawks", League: models.LeagueNBA}}}
	rc.Put(sig, replacement, time.Minute)

	got, ok := rc.Get(sig)
	require.True(t, ok)
	assert.Equal(t, replacement, got)
}

func TestResponseCache_EmptyListSurvivesRoundTrip(t *testing.T) {
	rc, _ := newMemoryCache(t, clock.NewMock())
	sig := NewSignature("get_players", models.LeagueMLB, nil)

	rc.Put(sig, &models.Result{Players: []models.Player{}}, time.Minute)

	got, ok := rc.Get(sig)
	require.True(t, ok)
	assert.NotNil(t, got.Players)
	assert.Empty(t, got.Players)
	assert.Equal(t, []models.Player{}, got.Items())
}

func TestResponseCache_IgnoresNonPositiveTTL(t *testing.T) {
	rc, _ := newMemoryCache(t, clock.NewMock())
	sig := NewSignature("get_game", models.LeagueNBA, map[string][]string{"game_id": {"1"}})

	rc.Put(sig, &models.Result{Game: &models.Game{ID: "1"}}, 0)

	_, ok := rc.Get(sig)
	assert.False(t, ok)
}

func TestResponseCache_DropsCorruptEntries(t *testing.T) {
	mock := clock.NewMock()
	rc, store := newMemoryCache(t, mock)
	sig := NewSignature("get_teams", models.LeagueNBA, nil)

	store.Set(sig.Key(), &Entry{Data: []byte("{not json"), CreatedAt: mock.Now(), ExpiresAt: mock.Now().Add(time.Hour)})

	_, ok := rc.Get(sig)
	assert.False(t, ok)
	_, stored := store.Get(sig.Key())
	assert.False(t, stored)
}

func TestNoOpStore(t *testing.T) {
	rc := New(NewNoOpStore())
	sig := NewSignature("get_teams", models.LeagueNBA, nil)

	rc.Put(sig, sampleTeams(), time.Hour)
	_, ok := rc.Get(sig)
	assert.False(t, ok)
	assert.NoError(t, rc.Close())
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(StoreConfig{Backend: BackendMemory}, nil, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	_ = store.Close()

	store, err = NewStore(StoreConfig{Backend: BackendNone}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &NoOpStore{}, store)

	_, err = NewStore(StoreConfig{Backend: BackendRedis}, nil, nil)
	assert.Error(t, err)

	_, err = NewStore(StoreConfig{Backend: "memcached"}, nil, nil)
	assert.Error(t, err)
}

func fullPlayersPage() *models.Result {
	team := &models.Team{
		ID:           "14",
		Name:         "Lakers",
		FullName:     "Los Angeles Lakers",
		Abbreviation: "LAL",
		City:         "Los Angeles",
		Conference:   "West",
		Division:     "Pacific",
		League:       models.LeagueNBA,
	}

	players := make([]models.Player, 0, 100)
	for i := 0; i < 100; i++ {
		players = append(players, models.Player{
			ID:        fmt.Sprintf("%d", 1000+i),
			FirstName: fmt.Sprintf("First%03d", i),
			LastName:  fmt.Sprintf("Last%03d", i),
			Position:  "G-F",
			Team:      team,
			League:    models.LeagueNBA,
		})
	}
	return &models.Result{Players: players, NextCursor: "1100"}
}

func TestMemoryStore_DefaultConfigStaysSmall(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	store, err := NewStore(StoreConfig{Backend: BackendMemory, LifeWindow: 12 * time.Hour}, nil, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runtime.ReadMemStats(&after)
	grown := int64(after.HeapSys) - int64(before.HeapSys)
	assert.Less(t, grown, int64(64<<20), "an empty store must not preallocate its whole budget")
}

func TestMemoryStore_FullPageRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{"default config", func(t *testing.T) Store {
			s, err := NewStore(StoreConfig{Backend: BackendMemory, LifeWindow: 12 * time.Hour}, nil, zap.NewNop())
			require.NoError(t, err)
			return s
		}},
		{"small bound", func(t *testing.T) Store {
			s, err := NewMemoryStore(time.Hour, 16, zap.NewNop())
			require.NoError(t, err)
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store(t)
			t.Cleanup(func() { _ = store.Close() })

			rc := New(store, WithClock(clock.NewMock()))
			sig := NewSignature("get_players", models.LeagueNBA, map[string][]string{"per_page": {"100"}})
			page := fullPlayersPage()

			rc.Put(sig, page, time.Hour)

			got, ok := rc.Get(sig)
			require.True(t, ok, "a 100 item page must be cached")
			assert.Len(t, got.Players, 100)
			assert.Equal(t, "1100", got.NextCursor)
		})
	}
}
