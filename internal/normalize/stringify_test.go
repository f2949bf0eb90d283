package normalize

import (
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

func TestIsIDField(t *testing.T) {
	for _, k := range []string{"team_id", "player_0_account_id", "league_id_2", "logo", "logo_sponsor"} {
		if !IsIDField(k) {
			t.Errorf("%q should be an id field", k)
		}
	}
	for _, k := range []string{"name", "rating", "time_created", "id", "sponsor_logo"} {
		if IsIDField(k) {
			t.Errorf("%q should not be an id field", k)
		}
	}
}

func TestStringifyIDsKeepsFullPrecision(t *testing.T) {
	rec := teams.Record{
		"team_id":             json.Number("111"),
		"player_0_account_id": json.Number("76561198012345678"),
		"logo":                json.Number("18446744073709551615"),
		"logo_sponsor":        "already",
		"wins":                json.Number("12"),
	}
	StringifyIDs(rec)

	if rec["team_id"] != "111" {
		t.Fatalf("team_id = %#v", rec["team_id"])
	}
	if rec["player_0_account_id"] != "76561198012345678" {
		t.Fatalf("account id = %#v", rec["player_0_account_id"])
	}
	if rec["logo"] != "18446744073709551615" {
		t.Fatalf("logo = %#v", rec["logo"])
	}
	if rec["logo_sponsor"] != "already" {
		t.Fatalf("string id should be untouched, got %#v", rec["logo_sponsor"])
	}
	if rec["wins"] != json.Number("12") {
		t.Fatalf("non-id field should be untouched, got %#v", rec["wins"])
	}
}
