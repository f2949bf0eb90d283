package testutil

import (
	"fmt"
	"strings"
)

// TeamInfoBody renders a GetTeamInfoByTeamID envelope holding one team per id.
// Ids are written as bare JSON numbers, exactly as the upstream does.
func TeamInfoBody(ids ...string) string {
	teams := make([]string, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, fmt.Sprintf(`{
			"team_id": %s,
			"name": "Team %s",
			"tag": "T%s",
			"time_created": 1325376000,
			"rating": "inactive",
			"logo": 558719049925435000,
			"logo_sponsor": 0,
			"country_code": "us",
			"url": "",
			"games_played_with_current_roster": 12,
			"player_0_account_id": 76561198012345678,
			"player_1_account_id": 86745912,
			"admin_account_id": 86745912,
			"league_id_0": 65006
		}`, id, id, id))
	}
	return fmt.Sprintf(`{"result": {"status": 1, "teams": [%s]}}`, strings.Join(teams, ","))
}

// TeamsInputBody renders a teams input file for the given ids.
func TeamsInputBody(ids ...string) string {
	entries := make([]string, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, fmt.Sprintf(`{"id": %s, "name": "team-%s"}`, id, id))
	}
	return fmt.Sprintf(`{"teams": [%s]}`, strings.Join(entries, ","))
}
