package normalize

import "github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"

const (
	// InactiveRating is what the upstream reports for unranked teams.
	InactiveRating = "inactive"
	// InactiveSentinel replaces InactiveRating so the field is always numeric.
	InactiveSentinel = -1
)

// NormalizeRating swaps the "inactive" rating for InactiveSentinel.
func NormalizeRating(rec teams.Record, field string) {
	if s, ok := rec[field].(string); ok && s == InactiveRating {
		rec[field] = InactiveSentinel
	}
}
