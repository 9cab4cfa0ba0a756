package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "unauthorized", err: entities.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantMsg: "unauthorized"},
		{name: "missing_team_hidden", err: entities.ErrTeamNotFound, wantStatus: http.StatusUnauthorized, wantMsg: "unauthorized"},
		{name: "bad_credentials", err: entities.ErrBadCredentials, wantStatus: http.StatusUnauthorized, wantMsg: "bad credentials"},
		{name: "user_exists", err: entities.ErrUserExists, wantStatus: http.StatusConflict, wantMsg: "username already taken"},
		{name: "internal_detail_hidden", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestWriteErrorInvalidArgument(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrInvalidArgument)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
