// Package client is the HTTP API client used by the teamctl CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/mapper"
)

// Client talks to the team builder service. A zero token means unauthenticated.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client against the service base URL.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LoginResult carries the session token and the signed-in user.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"displayName"`
	} `json:"user"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password, displayName string) error {
	body := map[string]string{"username": username, "password": password, "displayName": displayName}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Login signs in and remembers the session token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// Logout invalidates the current session token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// CreateTeam persists a new team and returns the hydrated result.
func (c *Client) CreateTeam(ctx context.Context, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	var dto mapper.TeamDTO
	if err := c.do(ctx, http.MethodPost, "/teams", teamRequest(name, roster), &dto); err != nil {
		return nil, err
	}
	team, err := mapper.ToDomainTeam(dto)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam replaces the team's name and roster and returns the hydrated result.
func (c *Client) UpdateTeam(ctx context.Context, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	var dto mapper.TeamDTO
	if err := c.do(ctx, http.MethodPut, "/teams/"+teamID, teamRequest(name, roster), &dto); err != nil {
		return nil, err
	}
	team, err := mapper.ToDomainTeam(dto)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams fetches all teams of the signed-in user.
func (c *Client) ListTeams(ctx context.Context) ([]entities.Team, error) {
	var dtos []mapper.TeamDTO
	if err := c.do(ctx, http.MethodGet, "/teams", nil, &dtos); err != nil {
		return nil, err
	}

	teams := make([]entities.Team, 0, len(dtos))
	for _, dto := range dtos {
		team, err := mapper.ToDomainTeam(dto)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, teamID string) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+teamID, nil, nil)
}

// Token returns the current session token.
func (c *Client) Token() string { return c.token }

func teamRequest(name string, roster []entities.RosterEntry) mapper.TeamRequest {
	pokemon := make([]mapper.PokemonDTO, 0, len(roster))
	for _, e := range roster {
		speciesID := e.SpeciesID
		pokemon = append(pokemon, mapper.PokemonDTO{
			PokemonID: &speciesID,
			Name:      e.Name,
			Sprite:    e.Sprite,
			Types:     e.Types,
		})
	}
	return mapper.TeamRequest{Name: name, Pokemon: pokemon}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
