package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
	"github.com/preston-bernstein/dota-teaminfo/internal/jsonutil"
	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
)

// Config controls how the Steam Web API client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches Dota 2 team info from the Steam Web API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a Steam client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchTeamInfo issues exactly one GET for id and returns the first team in
// the response when its team_id matches. The record is returned as decoded;
// every number in it is a json.Number carrying the upstream digits.
func (c *Client) FetchTeamInfo(ctx context.Context, id teams.TeamID) (teams.Record, error) {
	req, err := c.buildRequest(ctx, id)
	if err != nil {
		return nil, &providers.TransportError{Provider: providerName, TeamID: id, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.TransportError{Provider: providerName, TeamID: id, Err: redactKey(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &providers.TransportError{
			Provider:   providerName,
			TeamID:     id,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload teamInfoResponse
	if err := jsonutil.Decode(resp.Body, &payload); err != nil {
		return nil, &providers.TransportError{
			Provider:   providerName,
			TeamID:     id,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if len(payload.Result.Teams) == 0 {
		return nil, &providers.NotFoundError{Provider: providerName, TeamID: id}
	}
	team := payload.Result.Teams[0]
	if !team.MatchesID(id) {
		return nil, &providers.NotFoundError{Provider: providerName, TeamID: id, GotID: team.ID()}
	}
	return team, nil
}

func (c *Client) buildRequest(ctx context.Context, id teams.TeamID) (*http.Request, error) {
	endpoint, err := url.Parse(c.baseURL + teamInfoPath)
	if err != nil {
		return nil, err
	}

	q := endpoint.Query()
	q.Set("key", c.apiKey)
	q.Set("start_at_team_id", id.String())
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
