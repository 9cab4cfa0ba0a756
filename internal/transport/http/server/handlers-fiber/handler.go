// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/transport/http/middleware"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler implements the HTTP API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts all routes on the app. Team routes sit behind the session
// guard; auth routes do not.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/auth/register", h.PostRegister)
	app.Post("/auth/login", h.PostLogin)

	guard := middleware.SessionGuard(h.uc)
	app.Post("/auth/logout", guard, h.PostLogout)

	teams := app.Group("/teams", guard)
	teams.Post("/", h.PostTeams)
	teams.Get("/", h.GetTeams)
	teams.Put("/:teamId", h.PutTeam)
	teams.Delete("/:teamId", h.DeleteTeam)
}
