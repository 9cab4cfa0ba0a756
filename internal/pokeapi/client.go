// Package pokeapi implements the external species lookup client.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/config"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
)

// Client looks up canonical species data by name. Read-only, no caching, no
// retries: any non-200 answer is reported once as not found.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the configured provider.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.PokeAPI.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.PokeAPI.Timeout},
	}
}

type speciesResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Lookup fetches species data by name, lowercased before the request.
func (c *Client) Lookup(ctx context.Context, name string) (*entities.Species, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, strings.ToLower(strings.TrimSpace(name)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build species request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("species lookup: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, entities.ErrSpeciesNotFound
	}

	var body speciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode species response: %w", err)
	}

	types := make([]string, 0, len(body.Types))
	for _, t := range body.Types {
		types = append(types, t.Type.Name)
	}

	return &entities.Species{
		ID:     body.ID,
		Name:   body.Name,
		Sprite: body.Sprites.FrontDefault,
		Types:  types,
	}, nil
}
