package handlers_fiber

import (
	"net/http"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserResponse is the wire shape of an identity principal.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

// LoginResponse carries the fresh session token.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PostRegister creates a new user.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"displayName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.Register(c.Context(), body.Username, body.Password, body.DisplayName)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	})
}

// PostLogin verifies credentials and issues a session token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	token, user, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{
		Token: token,
		User: UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
		},
	})
}

// PostLogout invalidates the caller's session token.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), middleware.SessionToken(c)); err != nil {
		h.log.Errorw("logout failed", "error", err)
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
