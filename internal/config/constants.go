package config

import "time"

const (
	// EnvPrefix namespaces every environment override.
	EnvPrefix = "TEAMINFO_"

	ProviderSteam   = "steam"
	ProviderFixture = "fixture"

	defaultOutput       = "teaminfos.json"
	defaultProvider     = ProviderSteam
	defaultSteamBaseURL = "https://api.steampowered.com"
	defaultSteamTimeout = 10 * time.Second
	defaultRateInterval = time.Second
	defaultRateBurst    = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsSvc   = "teaminfo"
)

var (
	validProviders  = []string{ProviderSteam, ProviderFixture}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text", "console"}
)
