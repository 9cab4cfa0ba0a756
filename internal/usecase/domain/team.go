package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"
)

// CreateTeam persists a new team with its roster for the owner.
func (u *Usecase) CreateTeam(ctx context.Context, ownerID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateTeam(ctx, ownerID, name, roster)
}

// ListTeams returns all teams of the caller, hydrated with rosters.
func (u *Usecase) ListTeams(ctx context.Context, ownerID string) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListTeams(ctx, ownerID)
}

// UpdateTeam renames the team and replaces its roster wholesale after the
// ownership check passes.
func (u *Usecase) UpdateTeam(ctx context.Context, callerID, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.authorize(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	return u.repo.ReplaceRoster(ctx, teamID, name, roster)
}

// DeleteTeam removes the team and its roster after the ownership check passes.
func (u *Usecase) DeleteTeam(ctx context.Context, callerID, teamID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.authorize(ctx, callerID, teamID); err != nil {
		return err
	}
	return u.repo.DeleteTeam(ctx, teamID)
}

// authorize verifies the target team exists and belongs to the caller. A
// missing team and an owner mismatch are reported identically so the caller
// cannot probe which teams exist.
func (u *Usecase) authorize(ctx context.Context, callerID, teamID string) error {
	if callerID == "" || teamID == "" {
		return fmt.Errorf("%w: caller and team ids are required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, entities.ErrTeamNotFound) {
			return entities.ErrUnauthorized
		}
		return err
	}
	if team.OwnerID != callerID {
		u.log.Warnw("ownership mismatch", "team_id", teamID, "caller", callerID)
		return entities.ErrUnauthorized
	}
	return nil
}
