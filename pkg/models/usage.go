package models

import "time"

// UsageRecord describes one upstream call issued by the gateway
type UsageRecord struct {
	ID         string
	League     LeagueID
	Operation  string
	Path       string
	StatusCode int
	Duration   time.Duration
	Waited     time.Duration
	Error      string
	At         time.Time
}
