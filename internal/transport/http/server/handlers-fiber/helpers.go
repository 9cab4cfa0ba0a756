package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to HTTP statuses. A missing team maps to 401,
// not 404: the caller must not learn whether a foreign team id exists.
// Anything unexpected is reported generically; the detail stays in the server
// log.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrUnauthorized), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusUnauthorized
		msg = "unauthorized"
	case errors.Is(err, entities.ErrBadCredentials):
		status = http.StatusUnauthorized
		msg = "bad credentials"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		msg = "username already taken"
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
