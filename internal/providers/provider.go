package providers

import (
	"context"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// TeamInfoProvider fetches the raw upstream record for a single team.
// Implementations must return a record whose team_id equals id, or an error.
type TeamInfoProvider interface {
	FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error)
}
