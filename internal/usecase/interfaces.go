package usecase

import (
	"context"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/usecase/domain"
)

// SessionStore abstracts the opaque token store for the usecase layer.
type SessionStore = domain.SessionStore

// AuthUsecaseInterface abstracts identity operations for the delivery layer.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, username, password, displayName string) (*entities.User, error)
	Login(ctx context.Context, username, password string) (string, *entities.User, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves the caller from an opaque session token. It is the
	// session guard: no principal means every protected operation stops here.
	Authenticate(ctx context.Context, token string) (*entities.Principal, error)
}

// TeamUsecaseInterface abstracts team operations. Mutations and single-record
// reads verify ownership before touching the repository target; a missing team
// and a foreign team produce the same ErrUnauthorized.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, ownerID, name string, roster []entities.RosterEntry) (*entities.Team, error)
	ListTeams(ctx context.Context, ownerID string) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, callerID, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error)
	DeleteTeam(ctx context.Context, callerID, teamID string) error
}
