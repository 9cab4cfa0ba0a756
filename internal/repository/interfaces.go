// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
}

// TeamInterface exposes team-related operations. GetTeam applies no ownership
// filter; ownership is checked by the usecase layer.
type TeamInterface interface {
	CreateTeam(ctx context.Context, ownerID, name string, roster []entities.RosterEntry) (*entities.Team, error)
	ListTeams(ctx context.Context, ownerID string) ([]entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	ReplaceRoster(ctx context.Context, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error)
	DeleteTeam(ctx context.Context, teamID string) error
}

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	TeamInterface
}
