package americanfootball_nfl

import (
	"strings"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

type teamResponse struct {
	ID           balldontlie.FlexString `json:"id"`
	Conference   balldontlie.FlexString `json:"conference"`
	Division     balldontlie.FlexString `json:"division"`
	Location     balldontlie.FlexString `json:"location"`
	Name         balldontlie.FlexString `json:"name"`
	FullName     balldontlie.FlexString `json:"full_name"`
	Abbreviation balldontlie.FlexString `json:"abbreviation"`
}

type playerResponse struct {
	ID                   balldontlie.FlexString `json:"id"`
	FirstName            balldontlie.FlexString `json:"first_name"`
	LastName             balldontlie.FlexString `json:"last_name"`
	Position             balldontlie.FlexString `json:"position"`
	PositionAbbreviation balldontlie.FlexString `json:"position_abbreviation"`
	Team                 *teamResponse          `json:"team"`
}

type gameResponse struct {
	ID               balldontlie.FlexString `json:"id"`
	Date             balldontlie.FlexString `json:"date"`
	Season           balldontlie.FlexInt    `json:"season"`
	Status           balldontlie.FlexString `json:"status"`
	Postseason       balldontlie.FlexBool   `json:"postseason"`
	HomeTeamScore    balldontlie.FlexInt    `json:"home_team_score"`
	VisitorTeamScore balldontlie.FlexInt    `json:"visitor_team_score"`
	HomeTeam         *teamResponse          `json:"home_team"`
	VisitorTeam      *teamResponse          `json:"visitor_team"`
}

func (t *teamResponse) toTeam() *models.Team {
	if t == nil {
		return nil
	}
	return &models.Team{
		ID:           t.ID.String(),
		Name:         t.Name.String(),
		FullName:     t.FullName.String(),
		Abbreviation: t.Abbreviation.String(),
		City:         t.Location.String(),
		Conference:   t.Conference.String(),
		Division:     t.Division.String(),
		League:       models.LeagueNFL,
	}
}

func (g gameResponse) toGame() models.Game {
	return models.Game{
		ID:         g.ID.String(),
		Date:       g.Date.String(),
		Season:     g.Season.Ptr(),
		Postseason: g.Postseason.Ptr(),
		HomeTeam:   g.HomeTeam.toTeam(),
		AwayTeam:   g.VisitorTeam.toTeam(),
		Scores: models.Scores{
			Home: g.HomeTeamScore.Ptr(),
			Away: g.VisitorTeamScore.Ptr(),
		},
		Status: normalizeStatus(g.Status.String()),
		League: models.LeagueNFL,
	}
}

// normalizeStatus maps NFL feed statuses ("Final", "Final/OT", "1st Quarter")
// into the shared vocabulary
func normalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	lower := strings.ToLower(status)
	switch {
	case lower == "":
		return ""
	case strings.HasPrefix(lower, "final"):
		return "final"
	case strings.Contains(lower, "quarter"), lower == "halftime", strings.HasPrefix(lower, "overtime"):
		return "in_progress"
	case lower == "scheduled", lower == "pre-game":
		return "scheduled"
	}
	return lower
}
