package models

// Team is the uniform team shape shared by all leagues
type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	FullName     string   `json:"full_name,omitempty"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	City         string   `json:"city,omitempty"`
	Conference   string   `json:"conference,omitempty"`
	Division     string   `json:"division,omitempty"`
	League       LeagueID `json:"league"`
}

// Player is the uniform player shape shared by all leagues
type Player struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Position  string   `json:"position,omitempty"`
	Team      *Team    `json:"team,omitempty"`
	League    LeagueID `json:"league"`
}

// Scores holds the home and away score of a game.
// A nil score means the upstream did not report one (e.g. game not started).
type Scores struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Game is the uniform game shape shared by all leagues
type Game struct {
	ID         string   `json:"id"`
	Date       string   `json:"date,omitempty"`
	Season     *int     `json:"season,omitempty"`
	Postseason *bool    `json:"postseason,omitempty"`
	HomeTeam   *Team    `json:"home_team,omitempty"`
	AwayTeam   *Team    `json:"away_team,omitempty"`
	Scores     Scores   `json:"scores"`
	Status     string   `json:"status,omitempty"`
	League     LeagueID `json:"league"`
}

// Result is the normalized payload of one upstream call.
// Exactly one of Teams, Players, Games or Game is populated depending on the operation;
// the others stay nil so the populated one survives a cache round trip.
type Result struct {
	Teams      []Team   `json:"teams"`
	Players    []Player `json:"players"`
	Games      []Game   `json:"games"`
	Game       *Game    `json:"game,omitempty"`
	NextCursor string   `json:"next_cursor,omitempty"`
}
