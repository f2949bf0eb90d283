package steam

import "time"

const (
	defaultBaseURL     = "https://api.steampowered.com"
	teamInfoPath       = "/IDOTA2Match_570/GetTeamInfoByTeamID/v1/"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
	redactedKey        = "REDACTED"
)
