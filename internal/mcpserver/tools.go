package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/XavierBriggs/Janus/internal/gateway"
)

const leagueDescription = "League identifier: NBA, MLB or NFL"

// toolDefinitions describes the operations exposed as tools
func toolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(gateway.OpGetTeams,
			mcp.WithDescription("List all teams of a league"),
			mcp.WithString("league", mcp.Required(), mcp.Description(leagueDescription), mcp.Enum("NBA", "MLB", "NFL")),
		),
		mcp.NewTool(gateway.OpGetPlayers,
			mcp.WithDescription("List players of a league, optionally filtered by name. Results are paginated with an opaque cursor."),
			mcp.WithString("league", mcp.Required(), mcp.Description(leagueDescription), mcp.Enum("NBA", "MLB", "NFL")),
			mcp.WithString("first_name", mcp.Description("Filter by first name")),
			mcp.WithString("last_name", mcp.Description("Filter by last name")),
			mcp.WithString("cursor", mcp.Description("Cursor returned as meta.next_cursor by a previous call")),
			mcp.WithNumber("per_page", mcp.Description("Page size, 1 to 100")),
		),
		mcp.NewTool(gateway.OpGetGames,
			mcp.WithDescription("List games of a league filtered by dates, seasons or teams. Set live to skip the cache."),
			mcp.WithString("league", mcp.Required(), mcp.Description(leagueDescription), mcp.Enum("NBA", "MLB", "NFL")),
			mcp.WithArray("dates", mcp.Description("Dates in YYYY-MM-DD format"), mcp.WithStringItems()),
			mcp.WithArray("seasons", mcp.Description("Season years, e.g. 2024"), mcp.WithNumberItems()),
			mcp.WithArray("team_ids", mcp.Description("Provider team ids"), mcp.WithNumberItems()),
			mcp.WithArray("weeks", mcp.Description("Week numbers (NFL only)"), mcp.WithNumberItems()),
			mcp.WithString("cursor", mcp.Description("Cursor returned as meta.next_cursor by a previous call")),
			mcp.WithNumber("per_page", mcp.Description("Page size, 1 to 100")),
			mcp.WithBoolean("live", mcp.Description("Fetch fresh data instead of a cached result")),
		),
		mcp.NewTool(gateway.OpGetGame,
			mcp.WithDescription("Get a single game by its provider id"),
			mcp.WithString("league", mcp.Required(), mcp.Description(leagueDescription), mcp.Enum("NBA", "MLB", "NFL")),
			mcp.WithString("game_id", mcp.Required(), mcp.Description("Provider game id")),
			mcp.WithBoolean("live", mcp.Description("Fetch fresh data instead of a cached result")),
		),
	}
}
