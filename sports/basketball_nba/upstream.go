package basketball_nba

import (
	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Provider response structures matching the BallDontLie NBA JSON format

type teamResponse struct {
	ID           balldontlie.FlexString `json:"id"`
	Conference   balldontlie.FlexString `json:"conference"`
	Division     balldontlie.FlexString `json:"division"`
	City         balldontlie.FlexString `json:"city"`
	Name         balldontlie.FlexString `json:"name"`
	FullName     balldontlie.FlexString `json:"full_name"`
	Abbreviation balldontlie.FlexString `json:"abbreviation"`
}

type playerResponse struct {
	ID        balldontlie.FlexString `json:"id"`
	FirstName balldontlie.FlexString `json:"first_name"`
	LastName  balldontlie.FlexString `json:"last_name"`
	Position  balldontlie.FlexString `json:"position"`
	Team      *teamResponse          `json:"team"`
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
		City:         t.City.String(),
		Conference:   t.Conference.String(),
		Division:     t.Division.String(),
		League:       models.LeagueNBA,
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
		Status: NormalizeStatus(g.Status.String(), g.HomeTeamScore.Ptr(), g.VisitorTeamScore.Ptr()),
		League: models.LeagueNBA,
	}
}
