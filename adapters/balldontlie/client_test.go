package balldontlie_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

func TestNewClient(t *testing.T) {
	client := balldontlie.NewClient(balldontlie.Config{}, nil)
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	assert.True(t, client.RateLimits().UpdatedAt.IsZero(), "no limits before the first reply")
}

func TestClient_GetSendsAuthAndQuery(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL:   server.URL + "/",
		APIKey:    "secret-key",
		VerifySSL: true,
	}, zaptest.NewLogger(t))

	body, err := client.Get(context.Background(), models.UpstreamRequest{
		Path:   "/v1/games",
		Params: url.Values{"dates[]": {"2024-01-15"}, "per_page": {"25"}},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"data": []}`, string(body))
	require.NotNil(t, got)
	assert.Equal(t, "/v1/games", got.URL.Path)
	assert.Equal(t, "secret-key", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, []string{"2024-01-15"}, got.URL.Query()["dates[]"])
	assert.Equal(t, "25", got.URL.Query().Get("per_page"))
}

func TestClient_GetWithoutKeyOmitsAuthorization(t *testing.T) {
	var header string
	var present bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		header = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := balldontlie.NewClient(balldontlie.Config{BaseURL: server.URL, VerifySSL: true}, nil)
	_, err := client.Get(context.Background(), models.UpstreamRequest{Path: "/v1/teams"})

	require.NoError(t, err)
	assert.False(t, present)
	assert.Empty(t, header)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"error":"Not Found"}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"rate limited", http.StatusTooManyRequests, ``},
		{"server error", http.StatusInternalServerError, `upstream exploded`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := balldontlie.NewClient(balldontlie.Config{BaseURL: server.URL, VerifySSL: true}, nil)
			body, err := client.Get(context.Background(), models.UpstreamRequest{Path: "/v1/games/42"})

			require.Error(t, err)
			assert.Nil(t, body)

			var statusErr interface{ HTTPStatus() int }
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.HTTPStatus())
			assert.Contains(t, err.Error(), "HTTP")
		})
	}
}

func TestClient_TimeoutIsError(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL:   server.URL,
		Timeout:   50 * time.Millisecond,
		VerifySSL: true,
	}, nil)

	start := time.Now()
	_, err := client.Get(context.Background(), models.UpstreamRequest{Path: "/v1/teams"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	var statusErr interface{ HTTPStatus() int }
	assert.False(t, errors.As(err, &statusErr), "a timeout carries no HTTP status")
}

func TestClient_TracksRateLimitHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-ratelimit-limit", "60")
		w.Header().Set("x-ratelimit-remaining", "59")
		w.Header().Set("x-ratelimit-reset", "1700000000")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := balldontlie.NewClient(balldontlie.Config{BaseURL: server.URL, VerifySSL: true}, nil)
	_, err := client.Get(context.Background(), models.UpstreamRequest{Path: "/v1/teams"})
	require.NoError(t, err)

	limits := client.RateLimits()
	assert.Equal(t, 60, limits.Limit)
	assert.Equal(t, 59, limits.Remaining)
	assert.Equal(t, time.Unix(1700000000, 0), limits.ResetTime)
	assert.False(t, limits.UpdatedAt.IsZero())
}

func TestClient_VerifySSL(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	strict := balldontlie.NewClient(balldontlie.Config{BaseURL: server.URL, VerifySSL: true}, nil)
	_, err := strict.Get(context.Background(), models.UpstreamRequest{Path: "/v1/teams"})
	assert.Error(t, err, "self-signed certificate must be rejected when verification is on")

	lax := balldontlie.NewClient(balldontlie.Config{BaseURL: server.URL, VerifySSL: false}, nil)
	_, err = lax.Get(context.Background(), models.UpstreamRequest{Path: "/v1/teams"})
	assert.NoError(t, err)
}
