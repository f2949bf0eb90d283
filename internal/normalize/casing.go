package normalize

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// acronyms are rendered fully uppercase when they form a segment of their own.
var acronyms = []string{"id", "url"}

// CamelCase converts a snake_case key to camelCase.
//
// Keys that already contain an uppercase letter are returned unchanged. A key
// ending in an acronym treats the acronym as its own trailing segment, so
// "leagueid" and "league_id" both become "leagueID". A key made up only of an
// acronym stays lowercase.
func CamelCase(key string) string {
	if key == "" || HasUpper(key) {
		return key
	}

	rest, trailing := key, ""
	for _, a := range acronyms {
		if head, ok := cutSuffix(key, a); ok {
			rest, trailing = head, a
			break
		}
	}

	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(rest, "_") {
		if seg != "" {
			segments = append(segments, strings.ToLower(seg))
		}
	}
	if trailing != "" {
		segments = append(segments, trailing)
	}

	var b strings.Builder
	b.Grow(len(key))
	for i, seg := range segments {
		switch {
		case i == 0:
			b.WriteString(seg)
		case isAcronym(seg):
			b.WriteString(strings.ToUpper(seg))
		default:
			b.WriteString(Capitalize(seg))
		}
	}
	return b.String()
}

func isAcronym(seg string) bool {
	for _, a := range acronyms {
		if seg == a {
			return true
		}
	}
	return false
}

// CamelCaseKeys renames every key of rec with CamelCase. Keys are visited in
// sorted order so collisions resolve the same way on every run.
func CamelCaseKeys(rec teams.Record) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		camel := CamelCase(k)
		if camel == k {
			continue
		}
		v := rec[k]
		delete(rec, k)
		rec[camel] = v
	}
}
