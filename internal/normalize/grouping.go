package normalize

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// Placeholder marks the index position in a grouping pattern.
const Placeholder = "{N}"

// GroupFields collects enumerated keys into arrays. For each pattern the
// placeholder is replaced with 0, 1, 2, ... until a key is missing; the found
// values are stored in index order under GroupKey(pattern) and the scattered
// keys are removed.
func GroupFields(rec teams.Record, patterns []string) {
	for _, pattern := range patterns {
		if !strings.Contains(pattern, Placeholder) {
			continue
		}
		var values []any
		for i := 0; ; i++ {
			key := strings.Replace(pattern, Placeholder, strconv.Itoa(i), 1)
			v, ok := rec[key]
			if !ok {
				break
			}
			values = append(values, v)
			delete(rec, key)
		}
		if len(values) == 0 {
			continue
		}
		rec[GroupKey(pattern)] = values
	}
}

// GroupKey derives the array key for a pattern: the placeholder is dropped,
// doubled or dangling underscores are collapsed and the result is pluralized.
func GroupKey(pattern string) string {
	key := strings.ReplaceAll(pattern, Placeholder, "")
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	return strings.Trim(key, "_") + "s"
}
