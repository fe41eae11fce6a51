package models

import "time"

// RateLimits contains the rate limit information last reported by the provider
type RateLimits struct {
	Limit     int
	Remaining int
	ResetTime time.Time
	UpdatedAt time.Time
}
