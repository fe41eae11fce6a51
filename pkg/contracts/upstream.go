package contracts

import (
	"context"
	"time"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// Upstream performs raw requests against the sports-data provider
type Upstream interface {
	// Get issues a GET for the request and returns the response body of a 2xx reply
	Get(ctx context.Context, req models.UpstreamRequest) ([]byte, error)

	// RateLimits returns the rate limit information last reported by the provider
	RateLimits() models.RateLimits
}

// Limiter gates access to the shared upstream request budget
type Limiter interface {
	// Reserve tries to take a slot. It returns zero when a slot was taken, or the
	// time until the next slot may become available otherwise.
	Reserve() time.Duration

	// Wait blocks until a slot is taken and returns how long it waited
	Wait(ctx context.Context) (time.Duration, error)
}

// UsageRecorder receives one record per upstream call
type UsageRecorder interface {
	Record(ctx context.Context, rec models.UsageRecord)
}
