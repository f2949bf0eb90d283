package runner

import (
	"net/http"

	"github.com/preston-bernstein/dota-teaminfo/internal/config"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers/fixture"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers/steam"
)

func selectProvider(cfg *config.Config) providers.TeamInfoProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	default:
		return steam.NewClient(steam.Config{
			BaseURL:    cfg.Steam.BaseURL,
			APIKey:     cfg.APIKey,
			HTTPClient: &http.Client{Timeout: cfg.Steam.Timeout},
		})
	}
}
