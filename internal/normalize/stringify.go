package normalize

import (
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// explicitIDFields hold UGC ids even though their names lack an _id marker.
var explicitIDFields = map[string]struct{}{
	"logo":         {},
	"logo_sponsor": {},
}

// IsIDField reports whether key names a 64-bit identifier.
func IsIDField(key string) bool {
	if strings.Contains(key, "_id") {
		return true
	}
	_, ok := explicitIDFields[key]
	return ok
}

// StringifyIDs replaces numeric identifier values with their decimal text.
// Values that are already strings are left alone.
func StringifyIDs(rec teams.Record) {
	for k, v := range rec {
		if !IsIDField(k) {
			continue
		}
		if _, isString := v.(string); isString {
			continue
		}
		if s := teams.DecimalString(v); s != "" {
			rec[k] = s
		}
	}
}
