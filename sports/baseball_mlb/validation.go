package baseball_mlb

import "strings"

// NormalizeStatus standardizes MLB status codes (e.g. "STATUS_FINAL",
// "STATUS_IN_PROGRESS") into the lowercase vocabulary shared by all leagues.
func NormalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimPrefix(strings.ToUpper(status), "STATUS_"))
	switch normalized {
	case "final", "full_time":
		return "final"
	case "in_progress", "end_period":
		return "in_progress"
	case "scheduled", "pre":
		return "scheduled"
	}
	return normalized
}
