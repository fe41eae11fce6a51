package testutil

// Provider payloads captured from the BallDontLie API, trimmed to a few records.

// NBATeamsPayload is a /v1/teams response
const NBATeamsPayload = `{
  "data": [
    {"id": 14, "conference": "West", "division": "Pacific", "city": "Los Angeles", "name": "Lakers", "full_name": "Los Angeles Lakers", "abbreviation": "LAL"},
    {"id": 2, "conference": "East", "division": "Atlantic", "city": "Boston", "name": "Celtics", "full_name": "Boston Celtics", "abbreviation": "BOS"}
  ]
}`

// NBAPlayersPayload is a /v1/players response with a next page
const NBAPlayersPayload = `{
  "data": [
    {"id": 237, "first_name": "LeBron", "last_name": "James", "position": "F",
     "team": {"id": 14, "conference": "West", "division": "Pacific", "city": "Los Angeles", "name": "Lakers", "full_name": "Los Angeles Lakers", "abbreviation": "LAL"}}
  ],
  "meta": {"next_cursor": 238, "per_page": 25}
}`

// NBAGamesPayload is a /v1/games response: one final game, one scheduled game
const NBAGamesPayload = `{
  "data": [
    {"id": 1001, "date": "2024-01-15", "season": 2023, "status": "Final", "postseason": false,
     "home_team_score": 112, "visitor_team_score": 105,
     "home_team": {"id": 14, "name": "Lakers", "abbreviation": "LAL"},
     "visitor_team": {"id": 2, "name": "Celtics", "abbreviation": "BOS"}},
    {"id": 1002, "date": "2024-01-16", "season": 2023, "status": "2024-01-17T00:30:00Z", "postseason": false,
     "home_team_score": 0, "visitor_team_score": 0,
     "home_team": {"id": 2, "name": "Celtics", "abbreviation": "BOS"},
     "visitor_team": {"id": 14, "name": "Lakers", "abbreviation": "LAL"}}
  ],
  "meta": {"per_page": 25}
}`

// NBAGamePayload is a /v1/games/{id} response
const NBAGamePayload = `{
  "data": {"id": 1001, "date": "2024-01-15", "season": 2023, "status": "Final", "postseason": false,
    "home_team_score": 112, "visitor_team_score": 105,
    "home_team": {"id": 14, "name": "Lakers", "abbreviation": "LAL"},
    "visitor_team": {"id": 2, "name": "Celtics", "abbreviation": "BOS"}}
}`

// MLBTeamsPayload is a /mlb/v1/teams response
const MLBTeamsPayload = `{
  "data": [
    {"id": 10, "slug": "new-york-yankees", "abbreviation": "NYY", "display_name": "New York Yankees", "short_display_name": "Yankees", "name": "Yankees", "location": "New York", "league": "American", "division": "East"}
  ]
}`

// MLBPlayersPayload is a /mlb/v1/players response
const MLBPlayersPayload = `{
  "data": [
    {"id": 208, "first_name": "Aaron", "last_name": "Judge", "full_name": "Aaron Judge", "position": "Right Fielder",
     "team": {"id": 10, "abbreviation": "NYY", "display_name": "New York Yankees", "name": "Yankees", "location": "New York", "league": "American", "division": "East"}},
    {"id": 209, "full_name": "Shohei Ohtani", "position": "Designated Hitter"}
  ],
  "meta": {"next_cursor": null}
}`

// MLBGamesPayload is a /mlb/v1/games response
const MLBGamesPayload = `{
  "data": [
    {"id": 55001, "date": "2024-07-04T23:05:00.000Z", "season": 2024, "postseason": false, "status": "STATUS_FINAL",
     "home_team_name": "New York Yankees", "away_team_name": "Boston Red Sox",
     "home_team": {"id": 10, "name": "Yankees", "abbreviation": "NYY"},
     "home_team_data": {"runs": 5, "hits": 9, "errors": 0},
     "away_team_data": {"runs": 3, "hits": 7, "errors": 1}}
  ],
  "meta": {"next_cursor": "55002"}
}`

// NFLTeamsPayload is a /nfl/v1/teams response
const NFLTeamsPayload = `{
  "data": [
    {"id": 18, "conference": "AFC", "division": "WEST", "location": "Kansas City", "name": "Chiefs", "full_name": "Kansas City Chiefs", "abbreviation": "KC"}
  ]
}`

// NFLPlayersPayload is a /nfl/v1/players response
const NFLPlayersPayload = `{
  "data": [
    {"id": 33, "first_name": "Patrick", "last_name": "Mahomes", "position": "Quarterback", "position_abbreviation": "QB",
     "team": {"id": 18, "conference": "AFC", "division": "WEST", "location": "Kansas City", "name": "Chiefs", "full_name": "Kansas City Chiefs", "abbreviation": "KC"}}
  ],
  "meta": {"next_cursor": 34}
}`

// NFLGamesPayload is a /nfl/v1/games response
const NFLGamesPayload = `{
  "data": [
    {"id": 7001, "date": "2024-09-05T20:20:00.000Z", "season": 2024, "week": 1, "status": "Final", "postseason": false,
     "home_team_score": 27, "visitor_team_score": 20,
     "home_team": {"id": 18, "name": "Chiefs", "abbreviation": "KC", "location": "Kansas City"},
     "visitor_team": {"id": 3, "name": "Ravens", "abbreviation": "BAL", "location": "Baltimore"}}
  ]
}`

// PartialGamesPayload has records missing most fields and one that is not an object
const PartialGamesPayload = `{
  "data": [
    {"id": "g-1"},
    {"id": 2, "home_team": null, "home_team_score": "n/a", "status": null},
    "not-a-game"
  ]
}`

// NotFoundBody is the provider body of a 404 reply
const NotFoundBody = `{"error": "Not Found"}`
