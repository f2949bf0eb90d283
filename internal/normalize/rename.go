package normalize

import "github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"

// Rename moves a value from one key to another.
type Rename struct {
	From string
	To   string
}

// RenameKeys applies renames in order. Missing source keys are skipped.
func RenameKeys(rec teams.Record, renames []Rename) {
	for _, r := range renames {
		v, ok := rec[r.From]
		if !ok || r.From == r.To {
			continue
		}
		delete(rec, r.From)
		rec[r.To] = v
	}
}
