package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/jsonutil"
)

type teamsFile struct {
	Teams *[]teamEntry `json:"teams"`
}

type teamEntry struct {
	ID *teams.TeamID `json:"id"`
}

// LoadTeamIDs reads the team list at path. Only each entry's id is consumed.
// A missing file, unparsable JSON, an absent or null teams list, or an entry
// without a usable id is an error. An explicit empty list is valid.
func LoadTeamIDs(path string) ([]teams.TeamID, error) {
	if path == "" {
		return nil, fmt.Errorf("teams file path required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve teams file %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read teams file: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("parse teams file %s: empty document", abs)
	}

	var doc teamsFile
	if err := jsonutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse teams file %s: %w", abs, err)
	}

	if doc.Teams == nil {
		return nil, fmt.Errorf("parse teams file %s: missing teams list", abs)
	}

	ids := make([]teams.TeamID, 0, len(*doc.Teams))
	for i, entry := range *doc.Teams {
		if entry.ID == nil || *entry.ID == "" {
			return nil, fmt.Errorf("parse teams file %s: entry %d has no id", abs, i)
		}
		ids = append(ids, *entry.ID)
	}
	return ids, nil
}
