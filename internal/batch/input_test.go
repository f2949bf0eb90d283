package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/testutil"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestLoadTeamIDs(t *testing.T) {
	path := writeInput(t, testutil.TeamsInputBody("111", "222", "76561198012345678"))

	ids, err := LoadTeamIDs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []teams.TeamID{"111", "222", "76561198012345678"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestLoadTeamIDsAcceptsQuotedIDs(t *testing.T) {
	path := writeInput(t, `{"teams":[{"id":"007"}]}`)
	ids, err := LoadTeamIDs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "7" {
		t.Fatalf("ids = %v", ids)
	}
}

func TestLoadTeamIDsEmptyList(t *testing.T) {
	ids, err := LoadTeamIDs(writeInput(t, `{"teams":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no ids, got %v", ids)
	}
}

func TestLoadTeamIDsErrors(t *testing.T) {
	cases := map[string]string{
		"bad json":     `{"teams":[`,
		"missing id":   `{"teams":[{"name":"x"}]}`,
		"null id":      `{"teams":[{"id":null}]}`,
		"negative id":  `{"teams":[{"id":-1}]}`,
		"fractional":   `{"teams":[{"id":1.5}]}`,
		"empty doc":    `   `,
		"wrong shape":  `{"teams":{"id":1}}`,
		"no teams key": `{}`,
		"null teams":   `{"teams":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadTeamIDs(writeInput(t, body)); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLoadTeamIDsMissingFile(t *testing.T) {
	if _, err := LoadTeamIDs(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := LoadTeamIDs(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadTeamIDsResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "teams.json"), []byte(`{"teams":[{"id":5}]}`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	ids, err := LoadTeamIDs("teams.json")
	if err != nil || len(ids) != 1 || ids[0] != "5" {
		t.Fatalf("ids = %v err = %v", ids, err)
	}
}
