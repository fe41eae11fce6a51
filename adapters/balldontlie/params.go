package balldontlie

import (
	"net/url"
	"strconv"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// ParamTable maps logical parameter names to provider parameter names.
// Logical parameters without an entry are not sent.
type ParamTable map[string]string

// Apply renames logical parameters into provider parameters
func (t ParamTable) Apply(logical url.Values) url.Values {
	out := url.Values{}
	for name, values := range logical {
		providerName, ok := t[name]
		if !ok || providerName == "" {
			continue
		}
		for _, v := range values {
			out.Add(providerName, v)
		}
	}
	return out
}

// PlayersParams converts a players query into logical parameters
func PlayersParams(q models.PlayersQuery) url.Values {
	params := url.Values{}
	setIfNotEmpty(params, "first_name", q.FirstName)
	setIfNotEmpty(params, "last_name", q.LastName)
	setIfNotEmpty(params, "cursor", q.Cursor)
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return params
}

// GamesParams converts a games query into logical parameters
func GamesParams(q models.GamesQuery) url.Values {
	params := url.Values{}
	for _, d := range q.Dates {
		params.Add("dates", d)
	}
	addInts(params, "seasons", q.Seasons)
	addInts(params, "team_ids", q.TeamIDs)
	addInts(params, "weeks", q.Weeks)
	setIfNotEmpty(params, "cursor", q.Cursor)
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return params
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func addInts(params url.Values, key string, values []int) {
	for _, v := range values {
		params.Add(key, strconv.Itoa(v))
	}
}
