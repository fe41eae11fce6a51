package models

import "net/url"

// PlayersQuery holds the optional filters of get_players
type PlayersQuery struct {
	FirstName string
	LastName  string
	Cursor    string
	PerPage   int
}

// GamesQuery holds the optional filters of get_games
type GamesQuery struct {
	Dates   []string
	Seasons []int
	TeamIDs []int
	Weeks   []int
	Cursor  string
	PerPage int
	Live    bool
}

// UpstreamRequest is a provider request built by a league adapter
type UpstreamRequest struct {
	Path   string
	Params url.Values
}
