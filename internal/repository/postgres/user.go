package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery           = "INSERT INTO users(id, username, password_hash, display_name) VALUES($1, $2, $3, $4)"
	selectUserQuery           = "SELECT id, username, password_hash, display_name FROM users WHERE id=$1"
	selectUserByUsernameQuery = "SELECT id, username, password_hash, display_name FROM users WHERE username=$1"
)

// CreateUser inserts a new identity principal.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if _, err := p.db.Exec(ctx, insertUserQuery, user.ID, user.Username, user.PasswordHash, user.DisplayName); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "username", user.Username)
	return p.GetUser(ctx, user.ID)
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserQuery, userID))
}

// GetUserByUsername fetches a user by username.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserByUsernameQuery, username))
}

func (p *Postgres) scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
