package steam

import (
	"encoding/json"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

const providerName = "steam"

type teamInfoResponse struct {
	Result teamInfoResult `json:"result"`
}

type teamInfoResult struct {
	Status       json.Number    `json:"status"`
	StatusDetail string         `json:"statusDetail"`
	Teams        []teams.Record `json:"teams"`
}
