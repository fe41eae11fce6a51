package gateway

import (
	"strings"
	"time"

	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	dateLayout = "2006-01-02"
	maxPerPage  = 100
)

func validatePlayersQuery(q models.PlayersQuery) (models.PlayersQuery, error) {
	q.FirstName = strings.TrimSpace(q.FirstName)
	q.LastName = strings.TrimSpace(q.LastName)
	q.Cursor = strings.TrimSpace(q.Cursor)

	if err := validatePerPage(q.PerPage); err != nil {
		return q, err
	}
	return q, nil
}

func validateGamesQuery(q models.GamesQuery) (models.GamesQuery, error) {
	q.Cursor = strings.TrimSpace(q.Cursor)

	dates := make([]string, 0, len(q.Dates))
	for _, d := range q.Dates {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return q, models.NewValidationError("dates", "%q is not a YYYY-MM-DD date", d)
		}
		dates = append(dates, d)
	}
	q.Dates = dates

	checks := []struct {
		field  string
		values []int
	}{
		{"seasons", q.Seasons},
		{"team_ids", q.TeamIDs},
		{"weeks", q.Weeks},
	}
	for _, c := range checks {
		if err := validatePositive(c.field, c.values); err != nil {
			return q, err
		}
	}

	if err := validatePerPage(q.PerPage); err != nil {
		return q, err
	}
	return q, nil
}

func validateGameID(gameID string) (string, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return "", models.NewValidationError("game_id", "is required")
	}
	return gameID, nil
}

func validatePositive(field string, values []int) error {
	for _, v := range values {
		if v <= 0 {
			return models.NewValidationError(field, "values must be positive integers, got %d", v)
		}
	}
	return nil
}

// PerPage zero means "provider default"
func validatePerPage(perPage int) error {
	if perPage < 0 || perPage > maxPerPage {
		return models.NewValidationError("per_page", "must be between 1 and %d, got %d", maxPerPage, perPage)
	}
	return nil
}
