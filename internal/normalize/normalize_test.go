package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

func rawRecord() teams.Record {
	return teams.Record{
		"team_id":             json.Number("111"),
		"name":                "Alpha",
		"logo":                json.Number("18446744073709551615"),
		"logo_sponsor":        json.Number("42"),
		"player_0_account_id": json.Number("76561198012345678"),
		"player_1_account_id": json.Number("76561198012345679"),
		"league_id_0":         json.Number("5"),
		"time_created":        json.Number("1325376000"),
		"rating":              "inactive",
	}
}

func TestPipelineDefaultOnlyStringifies(t *testing.T) {
	p := New(Options{})
	if got := p.Stages(); !reflect.DeepEqual(got, []string{"stringify_ids"}) {
		t.Fatalf("stages = %v", got)
	}

	rec := p.Apply(rawRecord())
	if rec["team_id"] != "111" || rec["player_1_account_id"] != "76561198012345679" {
		t.Fatalf("ids not stringified: %v", rec)
	}
	if rec["rating"] != "inactive" {
		t.Fatalf("rating should be untouched without pretty: %v", rec["rating"])
	}
}

func TestPipelineCamelPretty(t *testing.T) {
	rec := New(Options{CamelCase: true, Pretty: true}).Apply(rawRecord())

	want := teams.Record{
		"teamID":           "111",
		"name":             "Alpha",
		"logoUGCID":        "18446744073709551615",
		"sponsorLogoUGCID": "42",
		"playerAccountIDs": []any{"76561198012345678", "76561198012345679"},
		"leagueIDs":        []any{"5"},
		"createdAt":        time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC),
		"rating":           InactiveSentinel,
	}
	if !reflect.DeepEqual(rec, want) {
		t.Fatalf("record mismatch\n got: %#v\nwant: %#v", rec, want)
	}
}

func TestPipelineSnakePretty(t *testing.T) {
	rec := New(Options{Pretty: true}).Apply(rawRecord())

	if got := rec["player_account_ids"]; !reflect.DeepEqual(got, []any{"76561198012345678", "76561198012345679"}) {
		t.Fatalf("player_account_ids = %#v", got)
	}
	if rec["logo_ugcid"] != "18446744073709551615" || rec["sponsor_logo_ugcid"] != "42" {
		t.Fatalf("renames missing: %v", rec)
	}
	if _, ok := rec["created_at"].(time.Time); !ok {
		t.Fatalf("created_at missing: %v", rec)
	}
	if rec["team_id"] != "111" {
		t.Fatalf("team_id = %#v", rec["team_id"])
	}
}

func TestPipelineNilSafe(t *testing.T) {
	var p *Pipeline
	if p.Apply(nil) != nil || p.Stages() != nil {
		t.Fatalf("nil pipeline should be a no-op")
	}
}
