package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery   = "INSERT INTO teams(id, name, user_id) VALUES($1, $2, $3)"
	insertRosterQuery = `
INSERT INTO team_pokemon(team_id, pokemon_id, name, sprite, types)
VALUES ($1, $2, $3, $4, $5)
`
	selectTeamQuery         = "SELECT id, name, user_id FROM teams WHERE id=$1"
	selectTeamsByOwnerQuery = "SELECT id, name, user_id FROM teams WHERE user_id=$1"
	selectRosterQuery       = "SELECT pokemon_id, name, sprite, types FROM team_pokemon WHERE team_id=$1 ORDER BY id"
	updateTeamNameQuery     = "UPDATE teams SET name=$2 WHERE id=$1"
	deleteRosterQuery       = "DELETE FROM team_pokemon WHERE team_id=$1"
	deleteTeamQuery         = "DELETE FROM teams WHERE id=$1"
)

// CreateTeam inserts a team and its roster entries in one transaction and
// returns the hydrated result.
func (p *Postgres) CreateTeam(ctx context.Context, ownerID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	teamID := uuid.NewString()
	if _, err := tx.Exec(ctx, insertTeamQuery, teamID, name, ownerID); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for _, e := range roster {
		if _, err := tx.Exec(ctx, insertRosterQuery, teamID, e.SpeciesID, e.Name, e.Sprite, e.Types); err != nil {
			return nil, fmt.Errorf("insert roster entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", teamID, "owner", ownerID, "roster", len(roster))
	return p.GetTeam(ctx, teamID)
}

// ListTeams fetches all teams owned by the user, each hydrated with its roster.
func (p *Postgres) ListTeams(ctx context.Context, ownerID string) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectTeamsByOwnerQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		roster, err := p.readRoster(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Roster = roster
	}

	return teams, nil
}

// GetTeam fetches a team with its roster by id. No ownership filter here.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	var t entities.Team
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(&t.ID, &t.Name, &t.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	roster, err := p.readRoster(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Roster = roster

	return &t, nil
}

// ReplaceRoster updates the team name and destructively replaces the roster:
// all existing entries are deleted, then the new set is inserted. The whole
// operation runs in one transaction, so a failure mid-sequence leaves the old
// roster intact.
func (p *Postgres) ReplaceRoster(ctx context.Context, teamID, name string, roster []entities.RosterEntry) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, updateTeamNameQuery, teamID, name)
	if err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrTeamNotFound
	}

	if _, err := tx.Exec(ctx, deleteRosterQuery, teamID); err != nil {
		return nil, fmt.Errorf("delete roster: %w", err)
	}
	for _, e := range roster {
		if _, err := tx.Exec(ctx, insertRosterQuery, teamID, e.SpeciesID, e.Name, e.Sprite, e.Types); err != nil {
			return nil, fmt.Errorf("insert roster entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("roster replaced", "team_id", teamID, "roster", len(roster))
	return p.GetTeam(ctx, teamID)
}

// DeleteTeam removes the team; roster entries go via ON DELETE CASCADE.
func (p *Postgres) DeleteTeam(ctx context.Context, teamID string) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	p.log.Infow("team deleted", "team_id", teamID)
	return nil
}

func (p *Postgres) readRoster(ctx context.Context, teamID string) ([]entities.RosterEntry, error) {
	rows, err := p.db.Query(ctx, selectRosterQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}
	defer rows.Close()

	roster := make([]entities.RosterEntry, 0)
	for rows.Next() {
		var e entities.RosterEntry
		if err := rows.Scan(&e.SpeciesID, &e.Name, &e.Sprite, &e.Types); err != nil {
			return nil, fmt.Errorf("scan roster entry: %w", err)
		}
		roster = append(roster, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}

	return roster, nil
}
