package handlers_fiber

import (
	"net/http"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/mapper"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTeams creates a team with its roster for the caller.
func (h *Handler) PostTeams(c *fiber.Ctx) error {
	var body mapper.TeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	roster, err := mapper.FromTeamRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	principal := middleware.Principal(c)
	team, err := h.uc.CreateTeam(c.Context(), principal.ID, body.Name, roster)
	if err != nil {
		h.log.Errorw("create team failed", "error", err, "user_id", principal.ID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTO(*team))
}

// GetTeams lists the caller's teams, hydrated with rosters.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	teams, err := h.uc.ListTeams(c.Context(), principal.ID)
	if err != nil {
		h.log.Errorw("list teams failed", "error", err, "user_id", principal.ID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTOList(teams))
}

// PutTeam renames the team and replaces its roster wholesale.
func (h *Handler) PutTeam(c *fiber.Ctx) error {
	var body mapper.TeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	roster, err := mapper.FromTeamRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	principal := middleware.Principal(c)
	team, err := h.uc.UpdateTeam(c.Context(), principal.ID, c.Params("teamId"), body.Name, roster)
	if err != nil {
		h.log.Errorw("update team failed", "error", err, "user_id", principal.ID, "team_id", c.Params("teamId"))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToTeamDTO(*team))
}

// DeleteTeam removes the team and its roster. Deleting an already-deleted id
// is not a 204: the team no longer exists, so the caller gets the same signal
// as for any other team that is not theirs.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if err := h.uc.DeleteTeam(c.Context(), principal.ID, c.Params("teamId")); err != nil {
		h.log.Errorw("delete team failed", "error", err, "user_id", principal.ID, "team_id", c.Params("teamId"))
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
