package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

type testProvider struct{}

func (t *testProvider) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	_ = ctx
	_ = id
	return nil, nil
}

func TestTeamInfoProviderInterfaceImplemented(t *testing.T) {
	var _ TeamInfoProvider = (*testProvider)(nil)
	var _ TeamInfoProvider = (*RateLimitedProvider)(nil)
}
