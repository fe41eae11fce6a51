package baseball_mlb

import (
	"strings"

	"github.com/XavierBriggs/Janus/adapters/balldontlie"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// MLB teams carry display names and an American/National league instead of
// the conference/city pair the NBA feed uses.
type teamResponse struct {
	ID               balldontlie.FlexString `json:"id"`
	Slug             balldontlie.FlexString `json:"slug"`
	Abbreviation     balldontlie.FlexString `json:"abbreviation"`
	DisplayName      balldontlie.FlexString `json:"display_name"`
	ShortDisplayName balldontlie.FlexString `json:"short_display_name"`
	Name             balldontlie.FlexString `json:"name"`
	Location         balldontlie.FlexString `json:"location"`
	League           balldontlie.FlexString `json:"league"`
	Division         balldontlie.FlexString `json:"division"`
}

type playerResponse struct {
	ID        balldontlie.FlexString `json:"id"`
	FirstName balldontlie.FlexString `json:"first_name"`
	LastName  balldontlie.FlexString `json:"last_name"`
	FullName  balldontlie.FlexString `json:"full_name"`
	Position  balldontlie.FlexString `json:"position"`
	Team      *teamResponse          `json:"team"`
}

type teamGameData struct {
	Runs   balldontlie.FlexInt `json:"runs"`
	Hits   balldontlie.FlexInt `json:"hits"`
	Errors balldontlie.FlexInt `json:"errors"`
}

type gameResponse struct {
	ID           balldontlie.FlexString `json:"id"`
	Date         balldontlie.FlexString `json:"date"`
	Season       balldontlie.FlexInt    `json:"season"`
	Postseason   balldontlie.FlexBool   `json:"postseason"`
	Status       balldontlie.FlexString `json:"status"`
	HomeTeamName balldontlie.FlexString `json:"home_team_name"`
	AwayTeamName balldontlie.FlexString `json:"away_team_name"`
	HomeTeam     *teamResponse          `json:"home_team"`
	AwayTeam     *teamResponse          `json:"away_team"`
	HomeTeamData *teamGameData          `json:"home_team_data"`
	AwayTeamData *teamGameData          `json:"away_team_data"`
}

func (t *teamResponse) toTeam() *models.Team {
	if t == nil {
		return nil
	}

	name := t.Name.String()
	if name == "" {
		name = t.ShortDisplayName.String()
	}

	return &models.Team{
		ID:           t.ID.String(),
		Name:         name,
		FullName:     t.DisplayName.String(),
		Abbreviation: t.Abbreviation.String(),
		City:         t.Location.String(),
		Conference:   t.League.String(),
		Division:     t.Division.String(),
		League:       models.LeagueMLB,
	}
}

func (p playerResponse) toPlayer() models.Player {
	first, last := p.FirstName.String(), p.LastName.String()
	if first == "" && last == "" {
		first, last = splitFullName(p.FullName.String())
	}

	return models.Player{
		ID:        p.ID.String(),
		FirstName: first,
		LastName:  last,
		Position:  p.Position.String(),
		Team:      p.Team.toTeam(),
		League:    models.LeagueMLB,
	}
}

func (g gameResponse) toGame() models.Game {
	return models.Game{
		ID:         g.ID.String(),
		Date:       g.Date.String(),
		Season:     g.Season.Ptr(),
		Postseason: g.Postseason.Ptr(),
		HomeTeam:   teamOrName(g.HomeTeam, g.HomeTeamName.String()),
		AwayTeam:   teamOrName(g.AwayTeam, g.AwayTeamName.String()),
		Scores: models.Scores{
			Home: runs(g.HomeTeamData),
			Away: runs(g.AwayTeamData),
		},
		Status: NormalizeStatus(g.Status.String()),
		League: models.LeagueMLB,
	}
}

// teamOrName falls back to the flat team name when the nested team object is missing
func teamOrName(t *teamResponse, name string) *models.Team {
	if team := t.toTeam(); team != nil {
		return team
	}
	if name == "" {
		return nil
	}
	return &models.Team{Name: name, FullName: name, League: models.LeagueMLB}
}

func runs(d *teamGameData) *int {
	if d == nil {
		return nil
	}
	return d.Runs.Ptr()
}

func splitFullName(full string) (string, string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	first, last, found := strings.Cut(full, " ")
	if !found {
		return "", first
	}
	return first, strings.TrimSpace(last)
}
