package normalize

import (
	"encoding/json"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/timeutil"
)

// ConvertTimestamps replaces epoch-seconds fields with UTC times under their
// renamed key. Fields holding anything but an integral number are skipped.
func ConvertTimestamps(rec teams.Record, fields []Rename) {
	for _, f := range fields {
		v, ok := rec[f.From]
		if !ok {
			continue
		}
		secs, ok := epochSeconds(v)
		if !ok {
			continue
		}
		delete(rec, f.From)
		rec[f.To] = timeutil.FromEpoch(secs)
	}
}

func epochSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		secs, err := n.Int64()
		return secs, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
