package basketball_nba

import (
	"strings"
	"time"
)

// NormalizeStatus standardizes the provider status field.
// The NBA feed reports the tip-off time as the status of scheduled games and
// period descriptions ("3rd Qtr", "Halftime") for games in progress.
// Finished games report "Final", "Final/OT", "Final/2OT" and so on.
func NormalizeStatus(status string, homeScore, awayScore *int) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return ""
	}

	if _, err := time.Parse(time.RFC3339, status); err == nil {
		return "scheduled"
	}

	lower := strings.ToLower(status)
	switch {
	case strings.HasPrefix(lower, "final"):
		return "final"
	case lower == "postponed", lower == "canceled", lower == "cancelled":
		return lower
	}

	if homeScore != nil || awayScore != nil {
		return "in_progress"
	}
	return status
}
