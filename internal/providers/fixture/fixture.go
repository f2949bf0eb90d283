package fixture

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
	"github.com/preston-bernstein/dota-teaminfo/internal/timeutil"
)

const providerName = "fixture"

// Provider returns deterministic team records useful for offline runs and tests.
type Provider struct {
	now     func() time.Time
	missing map[teams.TeamID]struct{}
}

// New creates a fixture provider. Ids passed as missing behave like teams the
// upstream does not know about.
func New(missing ...teams.TeamID) *Provider {
	m := make(map[teams.TeamID]struct{}, len(missing))
	for _, id := range missing {
		m[id] = struct{}{}
	}
	return &Provider{
		now:     time.Now,
		missing: m,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchTeamInfo returns a record shaped like the Steam response for id.
func (p *Provider) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := p.missing[id]; ok {
		return nil, &providers.NotFoundError{Provider: providerName, TeamID: id}
	}

	created := timeutil.StartOfDay(p.now()).AddDate(-1, 0, 0)
	suffix := id.String()
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	return teams.Record{
		teams.FieldTeamID:                  json.Number(id.String()),
		"name":                             "Fixture Team " + id.String(),
		"tag":                              "FX" + strings.ToUpper(suffix),
		"time_created":                     json.Number(formatUnix(created)),
		"rating":                           "inactive",
		"logo":                             json.Number("558719049925435000"),
		"logo_sponsor":                     json.Number("0"),
		"country_code":                     "us",
		"url":                              "https://example.com/teams/" + id.String(),
		"games_played_with_current_roster": json.Number("0"),
		"player_0_account_id":              json.Number("76561198012345678"),
		"player_1_account_id":              json.Number("86745912"),
		"admin_account_id":                 json.Number("86745912"),
		"league_id_0":                      json.Number("65006"),
	}, nil
}

func formatUnix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
