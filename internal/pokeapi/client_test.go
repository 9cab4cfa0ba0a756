package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/config"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.Config{
		PokeAPI: config.PokeAPIConfig{BaseURL: baseURL, Timeout: time.Second},
	})
}

func TestLookupExtractsSpecies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pokemon/pikachu", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 25,
			"name": "pikachu",
			"sprites": {"front_default": "https://img/25.png"},
			"types": [{"type": {"name": "electric"}}]
		}`))
	}))
	defer srv.Close()

	species, err := testClient(srv.URL).Lookup(context.Background(), "  Pikachu ")
	require.NoError(t, err)
	require.Equal(t, &entities.Species{
		ID:     25,
		Name:   "pikachu",
		Sprite: "https://img/25.png",
		Types:  []string{"electric"},
	}, species)
}

func TestLookupNon200IsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "missingno")
	require.ErrorIs(t, err, entities.ErrSpeciesNotFound)
}

func TestLookupServerErrorIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "pikachu")
	require.ErrorIs(t, err, entities.ErrSpeciesNotFound)
}
