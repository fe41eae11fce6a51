package models

import (
	"fmt"
	"strings"
)

// LeagueID identifies one of the supported leagues
type LeagueID string

const (
	LeagueNBA LeagueID = "NBA"
	LeagueMLB LeagueID = "MLB"
	LeagueNFL LeagueID = "NFL"
)

// Leagues returns every supported league in a stable order
func Leagues() []LeagueID {
	return []LeagueID{LeagueNBA, LeagueMLB, LeagueNFL}
}

// ParseLeague converts caller input into a LeagueID.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseLeague(raw string) (LeagueID, error) {
	candidate := LeagueID(strings.ToUpper(strings.TrimSpace(raw)))
	for _, league := range Leagues() {
		if candidate == league {
			return league, nil
		}
	}

	return "", &ValidationError{
		Field:   "league",
		Message: fmt.Sprintf("unsupported league %q (expected one of NBA, MLB, NFL)", raw),
	}
}

// String implements fmt.Stringer
func (l LeagueID) String() string {
	return string(l)
}
