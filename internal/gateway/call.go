package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/XavierBriggs/Janus/internal/metrics"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Call dispatches a named operation with loosely typed arguments, as decoded
// from a JSON tool invocation. Lists may be given as arrays or comma-separated strings.
func (g *Gateway) Call(ctx context.Context, name string, args map[string]any) models.Envelope {
	a := arguments(args)

	switch name {
	case OpGetTeams:
		league, err := a.str("league")
		if err != nil {
			return g.reject(name, err)
		}
		return g.GetTeams(ctx, league)

	case OpGetPlayers:
		var q models.PlayersQuery
		league, err := a.str("league")
		if err == nil {
			q.FirstName, err = a.str("first_name")
		}
		if err == nil {
			q.LastName, err = a.str("last_name")
		}
		if err == nil {
			q.Cursor, err = a.str("cursor")
		}
		if err == nil {
			q.PerPage, err = a.perPage()
		}
		if err != nil {
			return g.reject(name, err)
		}
		return g.GetPlayers(ctx, league, q)

	case OpGetGames:
		var q models.GamesQuery
		league, err := a.str("league")
		if err == nil {
			q.Dates, err = a.strs("dates")
		}
		if err == nil {
			q.Seasons, err = a.ints("seasons")
		}
		if err == nil {
			q.TeamIDs, err = a.ints("team_ids")
		}
		if err == nil {
			q.Weeks, err = a.ints("weeks")
		}
		if err == nil {
			q.Cursor, err = a.str("cursor")
		}
		if err == nil {
			q.PerPage, err = a.perPage()
		}
		if err == nil {
			q.Live, err = a.boolean("live")
		}
		if err != nil {
			return g.reject(name, err)
		}
		return g.GetGames(ctx, league, q)

	case OpGetGame:
		league, err := a.str("league")
		if err != nil {
			return g.reject(name, err)
		}
		gameID, err := a.str("game_id")
		if err != nil {
			return g.reject(name, err)
		}
		live, err := a.boolean("live")
		if err != nil {
			return g.reject(name, err)
		}
		return g.GetGame(ctx, league, gameID, live)
	}

	return g.reject(name, models.NewValidationError("operation", "unknown operation %q", name))
}

func (g *Gateway) reject(op string, err error) models.Envelope {
	env := models.ErrorEnvelope(err)
	metrics.RecordEnvelope(op, env.Status, env.ErrorType)
	return env
}

type arguments map[string]any

// str returns a scalar argument as text; absent and null are empty
func (a arguments) str(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", models.NewValidationError(key, "expected a string, got %T", v)
}

// strs returns a list argument. A string is split on commas.
func (a arguments) strs(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		for _, s := range t {
			items = append(items, s)
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			items = append(items, s)
		}
	default:
		items = []any{t}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := arguments{key: item}.str(key)
		if err != nil {
			return nil, err
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// ints returns a list argument of whole numbers
func (a arguments) ints(key string) ([]int, error) {
	if ints, ok := a[key].([]int); ok {
		return ints, nil
	}

	raw, err := a.strs(key)
	if err != nil || len(raw) == 0 {
		return nil, err
	}

	out := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := parseWhole(s)
		if err != nil {
			return nil, models.NewValidationError(key, "%q is not an integer", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// perPage returns per_page, or zero when absent. A present value must be in range.
func (a arguments) perPage() (int, error) {
	s, err := a.str("per_page")
	if err != nil || s == "" {
		return 0, err
	}
	n, err := parseWhole(s)
	if err != nil {
		return 0, models.NewValidationError("per_page", "%q is not an integer", s)
	}
	if n < 1 {
		return 0, models.NewValidationError("per_page", "must be between 1 and %d, got %d", maxPerPage, n)
	}
	return n, nil
}

func (a arguments) boolean(key string) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return false, nil
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	s, err := a.str(key)
	if err != nil {
		return false, err
	}
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, models.NewValidationError(key, "%q is not a boolean", s)
	}
	return b, nil
}

// parseWhole accepts "12" and "12.0" but not "12.5"
func parseWhole(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}
