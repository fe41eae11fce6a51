package ratelimit

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    any
		wantErr bool
	}{
		{"default strategy", Config{Limit: 5, Window: time.Minute}, &FixedWindow{}, false},
		{"fixed window", Config{Strategy: StrategyFixedWindow, Limit: 5, Window: time.Minute}, &FixedWindow{}, false},
		{"token bucket", Config{Strategy: StrategyTokenBucket, Limit: 5, Window: time.Minute}, &TokenBucket{}, false},
		{"unknown strategy", Config{Strategy: "leaky", Limit: 5, Window: time.Minute}, nil, true},
		{"zero limit", Config{Limit: 0, Window: time.Minute}, nil, true},
		{"zero window", Config{Limit: 5}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestEffectiveLimit(t *testing.T) {
	assert.Equal(t, 60, EffectiveLimit(60, "key"))
	assert.Equal(t, UnauthenticatedLimit, EffectiveLimit(60, ""))
	assert.Equal(t, 3, EffectiveLimit(3, ""))
}

func TestTokenBucket_SpreadsBudget(t *testing.T) {
	mock := clock.NewMock()
	b := NewTokenBucket(5, time.Minute, WithClock(mock))

	for i := 0; i < 5; i++ {
		require.Zero(t, b.Reserve(), "burst acquisition %d", i+1)
	}

	d := b.Reserve()
	assert.InDelta(t, float64(12*time.Second), float64(d), float64(time.Millisecond))

	mock.Add(d + time.Millisecond)
	assert.Zero(t, b.Reserve())
	assert.Positive(t, b.Reserve())
}
